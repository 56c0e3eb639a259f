package slots

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"slot-machine/sampler"
)

// Codec loads typed instances from slot documents using the tags of a Registry.
type Codec struct {
	reg *Registry
	src sampler.Source
	log *zap.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithSource makes samplers draw from src instead of the shared default
// generator. Pass a seeded *rand.Rand for reproducible loads.
func WithSource(src sampler.Source) Option {
	return func(c *Codec) { c.src = src }
}

// WithLogger sets the logger receiving debug events for resolved tags.
func WithLogger(l *zap.Logger) Option {
	return func(c *Codec) { c.log = l }
}

// NewCodec returns a codec resolving tags through reg. A nil reg means a
// registry holding only the standard samplers.
func NewCodec(reg *Registry, opts ...Option) *Codec {
	if reg == nil {
		reg = NewStandardRegistry()
	}

	c := &Codec{reg: reg, src: sampler.Global(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Registry returns the tag registry used by c.
func (c *Codec) Registry() *Registry { return c.reg }

// NewResolver returns a resolver for one document.
func (c *Codec) NewResolver() *Resolver {
	return &Resolver{reg: c.reg, src: c.src, log: c.log, anchors: map[*yaml.Node]any{}}
}

// Resolve resolves a document without a target type.
func (c *Codec) Resolve(n *yaml.Node) (any, error) {
	return c.NewResolver().Resolve(n)
}

// ResolveAll resolves every document of a stream, in order.
func (c *Codec) ResolveAll(r io.Reader) ([]any, error) {
	var out []any

	err := eachDocument(r, func(i int, doc *yaml.Node) error {
		v, err := c.Resolve(doc)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}

		out = append(out, v)

		return nil
	})

	return out, err
}

// Load builds an instance of t from a parsed document. An untagged root
// is read as if it carried t's tag.
func (c *Codec) Load(t *Type, doc *yaml.Node) (Object, error) {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w %s from empty document", ErrConstruction, t.name)
		}

		root = root.Content[0]
	}

	r := c.NewResolver()

	var (
		v   any
		err error
	)

	if tag := ExplicitTag(root); tag == "" || tag == t.Tag() {
		v, err = r.construct(t, root)
	} else {
		v, err = r.Resolve(root)
	}

	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case Object:
		if v.SlotType() == t {
			return v, nil
		}
	case *Mapping:
		return FromOrderedFields(t, v)
	}

	return nil, fmt.Errorf("%w %s from %#v", ErrConstruction, t.name, v)
}

// FromText parses one document and builds an instance of t from it.
func (c *Codec) FromText(t *Type, text string) (Object, error) {
	return c.Decode(t, strings.NewReader(text))
}

// Decode reads the first document of r and builds an instance of t.
func (c *Codec) Decode(t *Type, r io.Reader) (Object, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w %s from empty document", ErrConstruction, t.name)
		}

		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return c.Load(t, &doc)
}

// DecodeAll builds one instance of t per document of r, in stream order.
func (c *Codec) DecodeAll(t *Type, r io.Reader) ([]Object, error) {
	var out []Object

	err := eachDocument(r, func(i int, doc *yaml.Node) error {
		obj, err := c.Load(t, doc)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}

		out = append(out, obj)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// FromFile loads an instance of t from a file holding one document.
func (c *Codec) FromFile(t *Type, path string) (Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot file %s: %w", path, err)
	}
	defer f.Close()

	obj, err := c.Decode(t, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return obj, nil
}

// FromFileStream loads one instance of t per document of a multi-document file.
func (c *Codec) FromFileStream(t *Type, path string) ([]Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot file %s: %w", path, err)
	}
	defer f.Close()

	objs, err := c.DecodeAll(t, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return objs, nil
}

func eachDocument(r io.Reader, fn func(i int, doc *yaml.Node) error) error {
	dec := yaml.NewDecoder(r)

	for i := 0; ; i++ {
		var doc yaml.Node

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("%w: document %d: %w", ErrParse, i, err)
		}

		if err := fn(i, &doc); err != nil {
			return err
		}
	}
}
