// Package match ranks registered tags by similarity to a misspelled one.
//
// Tags are compared after normalization: the leading "!" is dropped, case is
// folded and the common "Sampler" suffix is removed, so "!uniform" is one
// edit away from "!UniformSampler" rather than eight.
package match
