package sampler

import (
	"fmt"

	"slot-machine/internal/common"
)

func pick[T any](src Source, values []T) (T, error) {
	if common.IsEmpty(values) {
		var zero T
		return zero, ErrEmpty
	}

	return values[src.IntN(len(values))], nil
}

// Choice returns one of its raw strings verbatim.
type Choice struct{}

func (Choice) Name() string { return "ChoiceSampler" }
func (Choice) Shape() Shape { return ShapeSequence }

func (Choice) SampleSequence(src Source, values []string) (any, error) {
	return pick(src, values)
}

// IntegerChoice coerces every element to int, then picks one.
type IntegerChoice struct{}

func (IntegerChoice) Name() string { return "IntegerSampler" }
func (IntegerChoice) Shape() Shape { return ShapeSequence }

func (IntegerChoice) SampleSequence(src Source, values []string) (any, error) {
	ints, err := common.MapErr(values, parseInt)
	if err != nil {
		return nil, fmt.Errorf("integer choice: %w", err)
	}

	return pick(src, ints)
}

// FloatChoice coerces every element to float64, then picks one.
type FloatChoice struct{}

func (FloatChoice) Name() string { return "FloatSampler" }
func (FloatChoice) Shape() Shape { return ShapeSequence }

func (FloatChoice) SampleSequence(src Source, values []string) (any, error) {
	floats, err := common.MapErr(values, parseFloat)
	if err != nil {
		return nil, fmt.Errorf("float choice: %w", err)
	}

	return pick(src, floats)
}
