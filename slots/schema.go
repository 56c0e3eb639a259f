package slots

import (
	"errors"
	"fmt"
)

// Object is a typed instance that can be loaded from and dumped to slot documents.
type Object interface {
	// SlotType returns the definition the instance conforms to.
	SlotType() *Type
	// SlotValues returns the field values in schema order.
	SlotValues() []any
}

// Constructor builds an instance from field values already coerced to
// their declared kinds.
type Constructor func(v Values) (Object, error)

// Field is one entry of a field schema.
type Field struct {
	Name string
	Kind Kind
	// Type is the nested definition of a KindObject field.
	Type *Type

	def    any
	hasDef bool
}

// Int declares an int field.
func Int(name string) Field { return Field{Name: name, Kind: KindInt} }

// Float declares a float64 field.
func Float(name string) Field { return Field{Name: name, Kind: KindFloat} }

// String declares a string field.
func String(name string) Field { return Field{Name: name, Kind: KindString} }

// Bool declares a bool field.
func Bool(name string) Field { return Field{Name: name, Kind: KindBool} }

// Nested declares a field holding an instance of t.
func Nested(name string, t *Type) Field { return Field{Name: name, Kind: KindObject, Type: t} }

// WithDefault returns a copy of f used when a document leaves the field out.
func (f Field) WithDefault(v any) Field {
	f.def = v
	f.hasDef = true

	return f
}

// Default returns the field default, if one was declared.
func (f Field) Default() (any, bool) {
	return f.def, f.hasDef
}

// Type is a typed-object definition: a tag name, an ordered field schema
// and a constructor. Types are built once with Define and never change
// afterwards, except for the tag visibility set by ShowTag.
type Type struct {
	name      string
	fields    []Field
	index     map[string]int
	construct Constructor
	showTag   bool
}

// Define validates a field schema and returns the type definition. The
// type's tag is "!"+name.
func Define(name string, construct Constructor, fields ...Field) (*Type, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: type name is empty", ErrSchema)
	}

	if construct == nil {
		return nil, fmt.Errorf("%w: type %s has no constructor", ErrSchema, name)
	}

	t := &Type{
		name:      name,
		fields:    append([]Field(nil), fields...),
		index:     make(map[string]int, len(fields)),
		construct: construct,
	}

	for i, f := range t.fields {
		if err := f.validate(); err != nil {
			return nil, fmt.Errorf("%w: type %s: %w", ErrSchema, name, err)
		}

		if _, dup := t.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: type %s: duplicate field %q", ErrSchema, name, f.Name)
		}

		t.index[f.Name] = i
	}

	return t, nil
}

// MustDefine is like Define but panics on an invalid schema. It is meant
// for package-level type definitions.
func MustDefine(name string, construct Constructor, fields ...Field) *Type {
	t, err := Define(name, construct, fields...)
	if err != nil {
		panic(err)
	}

	return t
}

func (f Field) validate() error {
	if f.Name == "" {
		return errors.New("field name is empty")
	}

	if !f.Kind.IsValid() {
		return fmt.Errorf("field %q: invalid kind %v", f.Name, f.Kind)
	}

	if f.Kind == KindObject && f.Type == nil {
		return fmt.Errorf("field %q: object field without nested type", f.Name)
	}

	if f.Kind != KindObject && f.Type != nil {
		return fmt.Errorf("field %q: %v field with nested type %s", f.Name, f.Kind, f.Type.name)
	}

	if f.hasDef {
		if _, err := coerce(f, f.def); err != nil {
			return fmt.Errorf("field %q default: %w", f.Name, err)
		}
	}

	return nil
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Tag returns the document tag bound to the type.
func (t *Type) Tag() string { return "!" + t.name }

// Fields returns the field schema in declaration order.
func (t *Type) Fields() []Field { return append([]Field(nil), t.fields...) }

// Field returns the declared field called name.
func (t *Type) Field(name string) (Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return Field{}, false
	}

	return t.fields[i], true
}

// ShowTag makes dumps of t carry its tag instead of a bare mapping.
// It returns t so it can wrap MustDefine.
func (t *Type) ShowTag() *Type {
	t.showTag = true
	return t
}

// TagShown reports whether dumps of t carry its tag.
func (t *Type) TagShown() bool { return t.showTag }

// New constructs an instance from values given in schema order. Values
// are coerced to the declared kinds first.
func (t *Type) New(values ...any) (Object, error) {
	if len(values) != len(t.fields) {
		return nil, fmt.Errorf("%w %s: got %d values for %d fields", ErrConstruction, t.name, len(values), len(t.fields))
	}

	m := NewMapping(len(values))
	for i, f := range t.fields {
		m.Set(f.Name, values[i])
	}

	return FromOrderedFields(t, m)
}

// Values holds the coerced field values handed to a Constructor.
type Values struct {
	t    *Type
	vals []any
}

// Type returns the definition being constructed.
func (v Values) Type() *Type { return v.t }

// Get returns the value of the named field. It panics if t declares no
// such field, which is a programming error in the constructor.
func (v Values) Get(name string) any {
	i, ok := v.t.index[name]
	if !ok {
		panic(fmt.Sprintf("slots: type %s has no field %q", v.t.name, name))
	}

	return v.vals[i]
}

// Int returns the value of an int field.
func (v Values) Int(name string) int { return v.Get(name).(int) }

// Float returns the value of a float field.
func (v Values) Float(name string) float64 { return v.Get(name).(float64) }

// String returns the value of a string field.
func (v Values) String(name string) string { return v.Get(name).(string) }

// Bool returns the value of a bool field.
func (v Values) Bool(name string) bool { return v.Get(name).(bool) }

// Object returns the value of a nested object field.
func (v Values) Object(name string) Object { return v.Get(name).(Object) }
