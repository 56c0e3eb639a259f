package sampler

//go:generate go tool stringer -type=Shape -output=shape_string.go

// Shape is the raw document node shape a sampler accepts.
type Shape int

const (
	_ Shape = iota // zero value is not a valid shape

	ShapeScalar
	ShapeSequence
	ShapeMapping

	// ShapeTotal is the total number of shapes defined
	ShapeTotal = int(iota)
)
