package common

import "iter"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// MapErr applies fn to every element in order and stops at the first error.
// No partial result is returned when an element fails.
func MapErr[S ~[]E, E, R any](s S, fn func(E) (R, error)) ([]R, error) {
	out := make([]R, 0, len(s))

	for _, e := range s {
		r, err := fn(e)
		if err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, nil
}

// Pairs iterates a flat key/value slice two elements at a time, the layout
// yaml.v3 uses for mapping node content. A trailing odd element is ignored.
func Pairs[S ~[]E, E any](s S) iter.Seq2[E, E] {
	return func(yield func(E, E) bool) {
		for i := 0; i+1 < len(s); i += 2 {
			if !yield(s[i], s[i+1]) {
				return
			}
		}
	}
}
