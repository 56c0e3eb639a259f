package slots

import "iter"

// Mapping is a string-keyed map that remembers insertion order.
// The zero value is ready to use.
type Mapping struct {
	keys []string
	vals map[string]any
}

// NewMapping returns an empty mapping with room for n keys.
func NewMapping(n int) *Mapping {
	return &Mapping{
		keys: make([]string, 0, n),
		vals: make(map[string]any, n),
	}
}

// Set stores v under k. A new key is appended; an existing key keeps its position.
func (m *Mapping) Set(k string, v any) {
	if m.vals == nil {
		m.vals = map[string]any{}
	}

	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}

	m.vals[k] = v
}

// Get returns the value stored under k.
func (m *Mapping) Get(k string) (any, bool) {
	v, ok := m.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Mapping) Has(k string) bool {
	_, ok := m.vals[k]
	return ok
}

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// All iterates the entries in insertion order.
func (m *Mapping) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}
