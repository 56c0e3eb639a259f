package match

import (
	"cmp"
	"slices"
	"strings"
)

// MinScore is the similarity below which a tag is not suggested.
const MinScore = 0.5

// Candidate is a registered tag scored against the input.
type Candidate struct {
	Tag   string
	Score float64
}

// Normalize folds a tag for comparison.
func Normalize(tag string) string {
	s := strings.ToLower(strings.TrimPrefix(tag, "!"))
	if trimmed := strings.TrimSuffix(s, "sampler"); trimmed != "" {
		s = trimmed
	}

	return s
}

// Rank scores every known tag against tag, best first. Ties keep the order
// of known. Candidates under MinScore are dropped.
func Rank(tag string, known []string) []Candidate {
	norm := Normalize(tag)

	var out []Candidate

	for _, k := range known {
		if score := Similarity(norm, Normalize(k)); score >= MinScore {
			out = append(out, Candidate{Tag: k, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return out
}

// Suggest returns up to limit known tags resembling tag.
func Suggest(tag string, known []string, limit int) []string {
	ranked := Rank(tag, known)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Tag
	}

	return out
}
