package slots_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"slot-machine/sampler"
	"slot-machine/slots"
)

func constant(v any) slots.TagFunc {
	return func(*slots.Resolver, *yaml.Node) (any, error) { return v, nil }
}

func TestStandardRegistry(t *testing.T) {
	reg := slots.NewStandardRegistry()

	assert.Equal(t, []string{
		"!ChoiceSampler",
		"!FloatSampler",
		"!IntegerSampler",
		"!NormalSampler",
		"!RangeSampler",
		"!UniformSampler",
	}, reg.Tags())

	e, ok := reg.Lookup("!NormalSampler")
	require.True(t, ok)
	assert.Equal(t, slots.EntrySampler, e.Kind)
	assert.Equal(t, sampler.ShapeMapping, e.Sampler.Shape())

	entries := reg.Entries()
	require.Len(t, entries, 6)
	assert.Equal(t, "!UniformSampler", entries[0].Tag, "entries keep registration order")
}

func TestRegisterType(t *testing.T) {
	reg := slots.NewRegistry()
	require.NoError(t, reg.RegisterType(InnerType))

	e, ok := reg.Lookup("!Inner")
	require.True(t, ok)
	assert.Equal(t, slots.EntryType, e.Kind)
	assert.Same(t, InnerType, e.Type)
	assert.Equal(t, "type", e.Kind.String())
}

// Duplicate tags are rejected unless the registry opts into shadowing.
func TestDuplicateTagIsAnError(t *testing.T) {
	reg := slots.NewStandardRegistry()

	err := reg.RegisterSampler(sampler.Range{})
	require.ErrorIs(t, err, slots.ErrDuplicateTag)

	require.NoError(t, reg.Register("!Dice", constant(1)))
	require.ErrorIs(t, reg.Register("!Dice", constant(2)), slots.ErrDuplicateTag)

	require.NoError(t, reg.RegisterType(InnerType))
	require.ErrorIs(t, reg.RegisterType(InnerType), slots.ErrDuplicateTag)
}

func TestShadowingLastRegistrationWins(t *testing.T) {
	reg := slots.NewStandardRegistry(slots.AllowShadowing())

	require.NoError(t, reg.Register("!Dice", constant(1)))
	require.NoError(t, reg.Register("!Dice", constant(6)))
	require.NoError(t, reg.Register("!RangeSampler", constant(99)))

	assert.Len(t, reg.Tags(), 7)

	vals, err := slots.NewCodec(reg).ResolveAll(stringsReader("a: !Dice x\nb: !RangeSampler 1..2\n"))
	require.NoError(t, err)
	require.Len(t, vals, 1)

	m := vals[0].(*slots.Mapping)
	a, _ := m.Get("a")
	b, _ := m.Get("b")
	assert.Equal(t, 6, a)
	assert.Equal(t, 99, b)
}

func TestRegisterRejectsBadTags(t *testing.T) {
	reg := slots.NewRegistry()

	for _, tag := range []string{"", "Dice", "!", "!!str"} {
		assert.Error(t, reg.Register(tag, constant(1)), "tag %q", tag)
	}

	assert.Error(t, reg.Register("!Nil", nil))
	assert.Empty(t, reg.Tags())
}

func TestUnregisteredSamplerTag(t *testing.T) {
	c := slots.NewCodec(slots.NewRegistry())

	_, err := c.FromText(BasketType, "chicken_nuggets: !RangeSampler 1..3\nprice: 1.0\n")
	require.ErrorIs(t, err, slots.ErrUnknownTag)
}
