package slots

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"slot-machine/sampler"
)

// TagFunc constructs a value from a node carrying its tag. The resolver
// gives access to child resolution and to the random source.
type TagFunc func(r *Resolver, n *yaml.Node) (any, error)

// EntryKind classifies registry entries.
type EntryKind int

const (
	EntryCustom EntryKind = iota
	EntryType
	EntrySampler
)

// String returns a human-readable entry kind.
func (k EntryKind) String() string {
	switch k {
	case EntryType:
		return "type"
	case EntrySampler:
		return "sampler"
	default:
		return "custom"
	}
}

// Entry is one tag binding.
type Entry struct {
	Tag  string
	Kind EntryKind
	// Type is set for EntryType bindings.
	Type *Type
	// Sampler is set for EntrySampler bindings.
	Sampler sampler.Sampler

	construct TagFunc
}

// Registry maps document tags to constructors. It is filled by explicit
// Register calls during setup and only read afterwards; it does not
// synchronize concurrent registration.
type Registry struct {
	entries map[string]*Entry
	order   []string
	shadow  bool
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// AllowShadowing makes a second registration under an existing tag
// replace the first instead of failing with ErrDuplicateTag.
func AllowShadowing() RegistryOption {
	return func(r *Registry) { r.shadow = true }
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{entries: map[string]*Entry{}}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewStandardRegistry returns a registry holding the standard samplers.
func NewStandardRegistry(opts ...RegistryOption) *Registry {
	r := NewRegistry(opts...)
	if err := r.RegisterSamplers(sampler.Standard()...); err != nil {
		// the standard set has unique names, so this only fires on a broken build
		panic(err)
	}

	return r
}

func (r *Registry) add(e *Entry) error {
	if !strings.HasPrefix(e.Tag, "!") || len(e.Tag) < 2 || strings.HasPrefix(e.Tag, "!!") {
		return fmt.Errorf("invalid tag %q (expected !Name)", e.Tag)
	}

	if _, ok := r.entries[e.Tag]; ok {
		if !r.shadow {
			return fmt.Errorf("%w %s", ErrDuplicateTag, e.Tag)
		}
	} else {
		r.order = append(r.order, e.Tag)
	}

	r.entries[e.Tag] = e

	return nil
}

// Register binds a custom constructor to tag.
func (r *Registry) Register(tag string, fn TagFunc) error {
	if fn == nil {
		return fmt.Errorf("tag %s: nil constructor", tag)
	}

	return r.add(&Entry{Tag: tag, Kind: EntryCustom, construct: fn})
}

// RegisterType binds t to its tag.
func (r *Registry) RegisterType(t *Type) error {
	return r.add(&Entry{Tag: t.Tag(), Kind: EntryType, Type: t, construct: func(res *Resolver, n *yaml.Node) (any, error) {
		return res.construct(t, n)
	}})
}

// RegisterTypes registers every type, stopping at the first error.
func (r *Registry) RegisterTypes(types ...*Type) error {
	for _, t := range types {
		if err := r.RegisterType(t); err != nil {
			return err
		}
	}

	return nil
}

// RegisterSampler binds s to its tag.
func (r *Registry) RegisterSampler(s sampler.Sampler) error {
	if err := sampler.Check(s); err != nil {
		return err
	}

	return r.add(&Entry{Tag: sampler.Tag(s), Kind: EntrySampler, Sampler: s, construct: func(res *Resolver, n *yaml.Node) (any, error) {
		return res.sample(s, n)
	}})
}

// RegisterSamplers registers every sampler, stopping at the first error.
func (r *Registry) RegisterSamplers(samplers ...sampler.Sampler) error {
	for _, s := range samplers {
		if err := r.RegisterSampler(s); err != nil {
			return err
		}
	}

	return nil
}

// Lookup returns the entry bound to tag.
func (r *Registry) Lookup(tag string) (*Entry, bool) {
	e, ok := r.entries[tag]
	return e, ok
}

// Entries returns all bindings in registration order.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, tag := range r.order {
		out = append(out, r.entries[tag])
	}

	return out
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	tags := slices.Clone(r.order)
	slices.Sort(tags)

	return tags
}
