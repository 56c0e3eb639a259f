package slots_test

import (
	"math/rand/v2"

	"slot-machine/slots"
)

type Parameters struct {
	A int
	B float64
	C string
}

var ParametersType = slots.MustDefine("Parameters", func(v slots.Values) (slots.Object, error) {
	return &Parameters{A: v.Int("a"), B: v.Float("b"), C: v.String("c")}, nil
}, slots.Int("a"), slots.Float("b"), slots.String("c"))

func (p *Parameters) SlotType() *slots.Type { return ParametersType }
func (p *Parameters) SlotValues() []any     { return []any{p.A, p.B, p.C} }

type Inner struct {
	Value int
}

var InnerType = slots.MustDefine("Inner", func(v slots.Values) (slots.Object, error) {
	return &Inner{Value: v.Int("value")}, nil
}, slots.Int("value"))

func (i *Inner) SlotType() *slots.Type { return InnerType }
func (i *Inner) SlotValues() []any     { return []any{i.Value} }

type Outer struct {
	Inner *Inner
}

var OuterType = slots.MustDefine("Outer", func(v slots.Values) (slots.Object, error) {
	return &Outer{Inner: v.Object("inner").(*Inner)}, nil
}, slots.Nested("inner", InnerType))

func (o *Outer) SlotType() *slots.Type { return OuterType }
func (o *Outer) SlotValues() []any     { return []any{o.Inner} }

type Basket struct {
	ChickenNuggets int
	Price          float64
}

var BasketType = slots.MustDefine("Basket", func(v slots.Values) (slots.Object, error) {
	return &Basket{ChickenNuggets: v.Int("chicken_nuggets"), Price: v.Float("price")}, nil
}, slots.Int("chicken_nuggets"), slots.Float("price"))

func (b *Basket) SlotType() *slots.Type { return BasketType }
func (b *Basket) SlotValues() []any     { return []any{b.ChickenNuggets, b.Price} }

// Shown carries its tag in dumps.
type Shown struct {
	Name    string
	Enabled bool
	Retries int
}

var ShownType = slots.MustDefine("Shown", func(v slots.Values) (slots.Object, error) {
	return &Shown{Name: v.String("name"), Enabled: v.Bool("enabled"), Retries: v.Int("retries")}, nil
}, slots.String("name"), slots.Bool("enabled"), slots.Int("retries").WithDefault(3)).ShowTag()

func (s *Shown) SlotType() *slots.Type { return ShownType }
func (s *Shown) SlotValues() []any     { return []any{s.Name, s.Enabled, s.Retries} }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5eed))
}

// newCodec registers every test type next to the standard samplers.
func newCodec(opts ...slots.Option) *slots.Codec {
	reg := slots.NewStandardRegistry()
	if err := reg.RegisterTypes(ParametersType, InnerType, OuterType, BasketType, ShownType); err != nil {
		panic(err)
	}

	return slots.NewCodec(reg, append([]slots.Option{slots.WithSource(seeded(42))}, opts...)...)
}
