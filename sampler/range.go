package sampler

import "fmt"

// RangeParams describes the integer sequence start, start+step, ... up to
// but excluding stop.
type RangeParams struct {
	Start int
	Stop  int
	Step  int
}

// ParseRange parses "<start>..<stop>" or "<start>..<stop>..<step>".
// Any other part count is rejected before anything else is parsed.
func ParseRange(value string) (RangeParams, error) {
	parts := splitParts(value)
	if len(parts) < 2 || len(parts) > 3 {
		return RangeParams{}, fmt.Errorf("%w: %q has %d parts, want 2 or 3", ErrPartCount, value, len(parts))
	}

	p := RangeParams{Step: 1}

	var err error

	if p.Start, err = parseInt(parts[0]); err != nil {
		return RangeParams{}, err
	}

	if p.Stop, err = parseInt(parts[1]); err != nil {
		return RangeParams{}, err
	}

	if len(parts) == 3 {
		if p.Step, err = parseInt(parts[2]); err != nil {
			return RangeParams{}, err
		}
	}

	return p, p.Validate()
}

// Len returns the number of values in the range. It is unsigned so that
// ranges spanning the whole int domain still count correctly.
func (p RangeParams) Len() uint64 {
	var span, step uint64

	switch {
	case p.Step > 0 && p.Stop > p.Start:
		span, step = uint64(p.Stop)-uint64(p.Start), uint64(p.Step)
	case p.Step < 0 && p.Stop < p.Start:
		span, step = uint64(p.Start)-uint64(p.Stop), -uint64(p.Step)
	default:
		return 0
	}

	return (span-1)/step + 1
}

// Validate rejects a zero step and empty ranges.
func (p RangeParams) Validate() error {
	if p.Step == 0 {
		return fmt.Errorf("%w: step must not be zero", ErrRange)
	}

	if p.Len() == 0 {
		return fmt.Errorf("%w: empty range %d..%d..%d", ErrRange, p.Start, p.Stop, p.Step)
	}

	return nil
}

// Range draws an int uniformly from a half-open integer range.
type Range struct{}

func (Range) Name() string { return "RangeSampler" }
func (Range) Shape() Shape { return ShapeScalar }

// Sample draws one value. p must be valid. The offset is computed with
// wrapping arithmetic; the result always lies inside the range.
func (Range) Sample(src Source, p RangeParams) int {
	return p.Start + p.Step*int(src.Uint64N(p.Len()))
}

func (r Range) SampleScalar(src Source, value string) (any, error) {
	p, err := ParseRange(value)
	if err != nil {
		return nil, err
	}

	return r.Sample(src, p), nil
}
