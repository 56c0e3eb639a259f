// Package slots loads typed parameter objects from YAML documents whose
// values may be literals or sampler tags, and dumps them back in field order.
//
// A type is declared once with an explicit field schema:
//
//	var BasketType = slots.MustDefine("Basket", newBasket,
//		slots.Int("chicken_nuggets"),
//		slots.Float("price"),
//	)
//
// and registered, together with the samplers it may use, by a setup routine:
//
//	reg := slots.NewStandardRegistry()
//	if err := reg.RegisterTypes(BasketType); err != nil { ... }
//	codec := slots.NewCodec(reg)
//
// Loading resolves tags depth-first, innermost nodes first:
//
//	chicken_nuggets: !RangeSampler 10..20
//	price: !UniformSampler 9.99..20.0
//
// An untagged root document is read as the requested type. Nested object
// fields may be untagged mappings, interpreted against the declared field
// type, or nodes tagged with a registered type.
//
// # Errors
//
// Every failure aborts the load and is returned to the caller, wrapped with
// the document position where it is known:
//
//   - ErrSchema: invalid type definition, raised by Define
//   - ErrParse: malformed YAML
//   - sampler.ErrNumber, sampler.ErrPartCount, sampler.ErrShape: bad sampler payloads
//   - ErrConstruction: a resolved value that is neither the type nor a mapping
//   - ErrUnknownField, ErrMissingField, ErrFieldType: field mismatches
//   - ErrUnknownTag, ErrDuplicateTag: registry misses and collisions
package slots
