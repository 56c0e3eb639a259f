package sampler

import (
	"fmt"
	"math"
	"slices"
)

// NormalParams parametrizes a Gaussian draw.
type NormalParams struct {
	Mu    float64
	Sigma float64
}

// DefaultNormal is the standard normal distribution.
var DefaultNormal = NormalParams{Mu: 0, Sigma: 1}

// ParseNormal reads mu and sigma from raw parameters, defaulting to the
// standard normal for the ones left out.
func ParseNormal(params map[string]string) (NormalParams, error) {
	p := DefaultNormal

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		var (
			dst *float64
			err error
		)

		switch k {
		case "mu":
			dst = &p.Mu
		case "sigma":
			dst = &p.Sigma
		default:
			return NormalParams{}, fmt.Errorf("%w %q (expected mu or sigma)", ErrUnknownParam, k)
		}

		if *dst, err = parseFloat(params[k]); err != nil {
			return NormalParams{}, fmt.Errorf("%s: %w", k, err)
		}
	}

	return p, p.Validate()
}

// Validate rejects non-finite parameters and a negative sigma.
func (p NormalParams) Validate() error {
	if !finite(p.Mu) || !finite(p.Sigma) {
		return fmt.Errorf("%w: normal parameters must be finite", ErrRange)
	}

	if p.Sigma < 0 {
		return fmt.Errorf("%w: sigma must not be negative, got %v", ErrRange, p.Sigma)
	}

	return nil
}

// Normal draws a float64 from a Gaussian given by mu and sigma.
type Normal struct{}

func (Normal) Name() string { return "NormalSampler" }
func (Normal) Shape() Shape { return ShapeMapping }

func (Normal) Sample(src Source, p NormalParams) float64 {
	return p.Mu + p.Sigma*src.NormFloat64()
}

func (n Normal) SampleMapping(src Source, params map[string]string) (any, error) {
	p, err := ParseNormal(params)
	if err != nil {
		return nil, err
	}

	return n.Sample(src, p), nil
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
