package slots

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the declared type of a schema field.
type Kind int

const (
	_ Kind = iota // skip zero value, an undeclared kind is a schema error

	KindInt
	KindFloat
	KindString
	KindBool
	KindObject // nested typed object, see Field.Type

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsValid reports whether k is one of the declared kinds.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
