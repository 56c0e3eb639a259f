package slots_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot-machine/slots"
)

func stringsReader(s string) *strings.Reader {
	return strings.NewReader(s)
}

func noop(slots.Values) (slots.Object, error) {
	return nil, nil
}

func TestDefineRejectsInvalidSchemas(t *testing.T) {
	tests := []struct {
		name      string
		typeName  string
		construct slots.Constructor
		fields    []slots.Field
	}{
		{name: "empty type name", typeName: "", construct: noop},
		{name: "nil constructor", typeName: "T"},
		{name: "empty field name", typeName: "T", construct: noop, fields: []slots.Field{slots.Int("")}},
		{name: "duplicate field", typeName: "T", construct: noop, fields: []slots.Field{slots.Int("a"), slots.String("a")}},
		{name: "undeclared kind", typeName: "T", construct: noop, fields: []slots.Field{{Name: "a"}}},
		{name: "kind out of range", typeName: "T", construct: noop, fields: []slots.Field{{Name: "a", Kind: slots.Kind(slots.KindTotal)}}},
		{name: "object without type", typeName: "T", construct: noop, fields: []slots.Field{slots.Nested("a", nil)}},
		{name: "scalar with type", typeName: "T", construct: noop, fields: []slots.Field{{Name: "a", Kind: slots.KindInt, Type: InnerType}}},
		{name: "bad default", typeName: "T", construct: noop, fields: []slots.Field{slots.Int("a").WithDefault("x")}},
		{name: "nil default", typeName: "T", construct: noop, fields: []slots.Field{slots.String("a").WithDefault(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := slots.Define(tt.typeName, tt.construct, tt.fields...)
			require.ErrorIs(t, err, slots.ErrSchema)
		})
	}
}

func TestMustDefinePanics(t *testing.T) {
	assert.Panics(t, func() {
		slots.MustDefine("T", noop, slots.Int("a"), slots.Int("a"))
	})
}

func TestTypeIntrospection(t *testing.T) {
	assert.Equal(t, "Parameters", ParametersType.Name())
	assert.Equal(t, "!Parameters", ParametersType.Tag())
	assert.False(t, ParametersType.TagShown())
	assert.True(t, ShownType.TagShown())

	fields := ParametersType.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "a", fields[0].Name)
	assert.Equal(t, slots.KindFloat, fields[1].Kind)

	f, ok := OuterType.Field("inner")
	require.True(t, ok)
	assert.Equal(t, slots.KindObject, f.Kind)
	assert.Same(t, InnerType, f.Type)

	_, ok = OuterType.Field("outer")
	assert.False(t, ok)

	retries, _ := ShownType.Field("retries")
	def, ok := retries.Default()
	require.True(t, ok)
	assert.Equal(t, 3, def)
}

func TestConstructorErrors(t *testing.T) {
	broken := slots.MustDefine("Broken", noop, slots.Int("a"))

	m := slots.NewMapping(1)
	m.Set("a", 1)

	_, err := slots.FromOrderedFields(broken, m)
	require.ErrorIs(t, err, slots.ErrConstruction)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KindInt", slots.KindInt.String())
	assert.Equal(t, "KindObject", slots.KindObject.String())
	assert.Equal(t, "Kind(0)", slots.Kind(0).String())
	assert.False(t, slots.Kind(0).IsValid())
	assert.True(t, slots.KindBool.IsValid())
}
