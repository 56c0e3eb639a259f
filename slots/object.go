package slots

import (
	"fmt"
	"math"
)

// ToOrderedFields returns the fields of obj in schema order. With
// recursive set, nested objects are replaced by their own ordered fields;
// otherwise they are kept as instances.
func ToOrderedFields(obj Object, recursive bool) (*Mapping, error) {
	t := obj.SlotType()

	vals := obj.SlotValues()
	if len(vals) != len(t.fields) {
		return nil, fmt.Errorf("%w: %s returned %d values for %d fields", ErrSchema, t.name, len(vals), len(t.fields))
	}

	m := NewMapping(len(vals))

	for i, f := range t.fields {
		v := vals[i]

		if nested, ok := v.(Object); ok && recursive && f.Kind == KindObject {
			inner, err := ToOrderedFields(nested, true)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", t.name, f.Name, err)
			}

			v = inner
		}

		m.Set(f.Name, v)
	}

	return m, nil
}

// FromOrderedFields constructs an instance of t from a mapping of field
// values. Nested object fields may be given as instances or as mappings,
// which are constructed recursively.
func FromOrderedFields(t *Type, m *Mapping) (Object, error) {
	for k := range m.All() {
		if _, ok := t.index[k]; !ok {
			return nil, fmt.Errorf("%w %q for type %s", ErrUnknownField, k, t.name)
		}
	}

	vals := make([]any, len(t.fields))

	for i, f := range t.fields {
		raw, ok := m.Get(f.Name)
		if !ok {
			if !f.hasDef {
				return nil, fmt.Errorf("%w %q for type %s", ErrMissingField, f.Name, t.name)
			}

			raw = f.def
		}

		v, err := coerce(f, raw)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.name, f.Name, err)
		}

		vals[i] = v
	}

	obj, err := t.construct(Values{t: t, vals: vals})
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConstruction, t.name, err)
	}

	if obj == nil || obj.SlotType() != t {
		return nil, fmt.Errorf("%w %s: constructor returned %T", ErrConstruction, t.name, obj)
	}

	return obj, nil
}

// coerce converts a resolved document value to the Go value carried by f.
// Ints widen to float fields; nothing else is converted.
func coerce(f Field, raw any) (any, error) {
	switch f.Kind {
	case KindInt:
		switch v := raw.(type) {
		case int:
			return v, nil
		case int64:
			if v < math.MinInt || v > math.MaxInt {
				return nil, fmt.Errorf("%w: %d overflows int", ErrFieldType, v)
			}

			return int(v), nil
		case uint64:
			if v > math.MaxInt {
				return nil, fmt.Errorf("%w: %d overflows int", ErrFieldType, v)
			}

			return int(v), nil
		}
	case KindFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
	case KindString:
		if v, ok := raw.(string); ok {
			return v, nil
		}
	case KindBool:
		if v, ok := raw.(bool); ok {
			return v, nil
		}
	case KindObject:
		switch v := raw.(type) {
		case Object:
			if v.SlotType() == f.Type {
				return v, nil
			}

			return nil, fmt.Errorf("%w: want %s, got %s", ErrConstruction, f.Type.name, v.SlotType().name)
		case *Mapping:
			return FromOrderedFields(f.Type, v)
		}

		return nil, fmt.Errorf("%w %s from %#v", ErrConstruction, f.Type.name, raw)
	}

	return nil, fmt.Errorf("%w: want %v, got %T (%v)", ErrFieldType, f.Kind, raw, raw)
}

// As asserts the concrete type of a loaded instance. It is meant to wrap
// the loading calls directly:
//
//	p, err := slots.As[*Params](codec.FromText(ParamsType, text))
func As[T Object](obj Object, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}

	v, ok := obj.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T is not %T", ErrConstruction, obj, zero)
	}

	return v, nil
}

// AsAll is As for a sequence of instances.
func AsAll[T Object](objs []Object, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}

	out := make([]T, len(objs))

	for i, obj := range objs {
		v, ok := obj.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("%w: document %d: %T is not %T", ErrConstruction, i, obj, zero)
		}

		out[i] = v
	}

	return out, nil
}
