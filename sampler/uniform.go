package sampler

import "fmt"

// UniformParams bounds a continuous uniform draw.
type UniformParams struct {
	Low  float64
	High float64
}

// ParseUniform parses "<low>..<high>".
func ParseUniform(value string) (UniformParams, error) {
	parts := splitParts(value)
	if len(parts) != 2 {
		return UniformParams{}, fmt.Errorf("%w: %q has %d parts, want 2", ErrPartCount, value, len(parts))
	}

	low, err := parseFloat(parts[0])
	if err != nil {
		return UniformParams{}, err
	}

	high, err := parseFloat(parts[1])
	if err != nil {
		return UniformParams{}, err
	}

	p := UniformParams{Low: low, High: high}

	return p, p.Validate()
}

// Validate rejects non-finite bounds. Inverted bounds are allowed and
// sample from [high, low].
func (p UniformParams) Validate() error {
	if !finite(p.Low) || !finite(p.High) {
		return fmt.Errorf("%w: uniform bounds must be finite, got %v..%v", ErrRange, p.Low, p.High)
	}

	return nil
}

// Uniform draws a float64 between the two bounds of "<low>..<high>".
type Uniform struct{}

func (Uniform) Name() string { return "UniformSampler" }
func (Uniform) Shape() Shape { return ShapeScalar }

// Sample draws low*(1-u) + high*u with u in [0, 1). The weighted form stays
// finite for any finite bounds, where high-low may overflow.
func (Uniform) Sample(src Source, p UniformParams) float64 {
	u := src.Float64()
	return p.Low*(1-u) + p.High*u
}

func (u Uniform) SampleScalar(src Source, value string) (any, error) {
	p, err := ParseUniform(value)
	if err != nil {
		return nil, err
	}

	return u.Sample(src, p), nil
}
