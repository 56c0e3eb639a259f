// Package sampler provides the random value generators that can stand in
// for literal values in slot documents.
//
// Each sampler is bound to one tag, equal to its name, and declares the
// document node shape it reads:
//
//	price:   !UniformSampler 9.99..20.0      # scalar, float in [low, high)
//	count:   !RangeSampler 10..20..2         # scalar, int in [start, stop) by step
//	color:   !ChoiceSampler [red, green]     # sequence, one string verbatim
//	size:    !IntegerSampler [1, 2, 4]       # sequence, coerced to int first
//	ratio:   !FloatSampler [0.5, 0.75]       # sequence, coerced to float64 first
//	noise:   !NormalSampler {mu: 0, sigma: 2} # mapping, Gaussian float64
//
// Samplers are stateless. Payloads are parsed into a parameter record
// (UniformParams, RangeParams, NormalParams) and validated before anything
// is drawn from the Source.
package sampler
