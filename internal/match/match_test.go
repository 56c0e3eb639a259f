package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"range", "range", 0},
		{"range", "rnage", 2},
		{"uniform", "unifrom", 2},
		{"kitten", "sitting", 3},
		{"normal", "norm", 2},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("float", "float"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.75, Similarity("norm", "nor"), 1e-9)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "uniform", Normalize("!UniformSampler"))
	assert.Equal(t, "uniform", Normalize("!uniform"))
	assert.Equal(t, "sampler", Normalize("!Sampler"))
	assert.Equal(t, "dice", Normalize("Dice"))
}

var standard = []string{
	"!UniformSampler", "!RangeSampler", "!ChoiceSampler",
	"!IntegerSampler", "!FloatSampler", "!NormalSampler",
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"!UniformSampler"}, Suggest("!UnifromSampler", standard, 3))
	assert.Equal(t, []string{"!RangeSampler"}, Suggest("!range", standard, 3))
	assert.Equal(t, []string{"!NormalSampler"}, Suggest("!Normal", standard, 1))
	assert.Empty(t, Suggest("!Zebra", standard, 3))
	assert.Empty(t, Suggest("!Flaot", standard, 0))
}

func TestRankOrder(t *testing.T) {
	ranked := Rank("!Float", []string{"!Floats", "!Float", "!Flat"})

	if assert.Len(t, ranked, 3) {
		assert.Equal(t, "!Float", ranked[0].Tag)
		assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
		assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
	}
}
