package sampler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

var (
	// ErrNumber reports an unparsable numeric token.
	ErrNumber = errors.New("unparsable numeric token")
	// ErrPartCount reports a range expression with the wrong number of parts.
	ErrPartCount = errors.New("wrong part count for range expression")
	// ErrShape reports a sampler tag applied to a node of the wrong shape.
	ErrShape = errors.New("unexpected node shape for this sampler tag")
	// ErrRange reports parameters that describe an empty or invalid range.
	ErrRange = errors.New("invalid range")
	// ErrEmpty reports a choice over an empty sequence.
	ErrEmpty = errors.New("empty choice sequence")
	// ErrUnknownParam reports a mapping key the sampler does not accept.
	ErrUnknownParam = errors.New("unknown parameter")
)

// Delimiter separates the parts of scalar range expressions.
const Delimiter = ".."

// Source is the random source samplers draw from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	Uint64N(n uint64) uint64
	NormFloat64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64        { return rand.Float64() }
func (globalSource) IntN(n int) int          { return rand.IntN(n) }
func (globalSource) Uint64N(n uint64) uint64 { return rand.Uint64N(n) }
func (globalSource) NormFloat64() float64    { return rand.NormFloat64() }

// Global returns a Source backed by the shared default generator of math/rand/v2.
func Global() Source {
	return globalSource{}
}

// Sampler is a stateless value generator bound to a document tag.
// Every implementation also implements exactly one of ScalarSampler,
// SequenceSampler or MappingSampler, matching Shape.
type Sampler interface {
	// Name is the tag name without the leading '!'.
	Name() string
	Shape() Shape
}

// ScalarSampler samples from a single scalar string.
type ScalarSampler interface {
	Sampler
	SampleScalar(src Source, value string) (any, error)
}

// SequenceSampler samples from an ordered list of raw scalar strings.
type SequenceSampler interface {
	Sampler
	SampleSequence(src Source, values []string) (any, error)
}

// MappingSampler samples from named raw scalar parameters.
type MappingSampler interface {
	Sampler
	SampleMapping(src Source, params map[string]string) (any, error)
}

// Tag returns the document tag for s, e.g. "!RangeSampler".
func Tag(s Sampler) string {
	return "!" + s.Name()
}

// Standard returns the built-in samplers, ready to be registered by a setup routine.
func Standard() []Sampler {
	return []Sampler{
		Uniform{},
		Range{},
		Choice{},
		IntegerChoice{},
		FloatChoice{},
		Normal{},
	}
}

// Check verifies that s implements the sample method matching its declared shape.
func Check(s Sampler) error {
	var ok bool

	switch s.Shape() {
	case ShapeScalar:
		_, ok = s.(ScalarSampler)
	case ShapeSequence:
		_, ok = s.(SequenceSampler)
	case ShapeMapping:
		_, ok = s.(MappingSampler)
	default:
		return fmt.Errorf("sampler %q: invalid shape %v", s.Name(), s.Shape())
	}

	if !ok {
		return fmt.Errorf("sampler %q does not implement %v sampling", s.Name(), s.Shape())
	}

	return nil
}

func splitParts(value string) []string {
	return strings.Split(value, Delimiter)
}

func parseFloat(token string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, token)
	}

	return f, nil
}

func parseInt(token string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, token)
	}

	return i, nil
}
