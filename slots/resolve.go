package slots

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"slot-machine/internal/common"
	"slot-machine/sampler"
)

const mergeTag = "!!merge"

// Resolver turns one document's node tree into values. Tagged nodes are
// handed to their registered constructor, untagged nodes become plain
// values: int, float64, string, bool, nil, []any and *Mapping.
// A Resolver is scoped to a single document.
type Resolver struct {
	reg     *Registry
	src     sampler.Source
	log     *zap.Logger
	anchors map[*yaml.Node]any
}

// Source returns the random source samplers draw from.
func (r *Resolver) Source() sampler.Source { return r.src }

// Resolve resolves n and everything below it, innermost nodes first.
func (r *Resolver) Resolve(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if common.IsEmpty(n.Content) {
			return nil, nil
		}

		return r.Resolve(n.Content[0])
	case yaml.AliasNode:
		return r.Resolve(n.Alias)
	}

	if v, ok := r.anchors[n]; ok {
		return v, nil
	}

	v, err := r.resolve(n)
	if err != nil {
		return nil, err
	}

	if n.Anchor != "" {
		r.anchors[n] = v
	}

	return v, nil
}

func (r *Resolver) resolve(n *yaml.Node) (any, error) {
	if tag := ExplicitTag(n); tag != "" {
		e, ok := r.reg.Lookup(tag)
		if !ok {
			return nil, nodeErr(n, fmt.Errorf("%w %s", ErrUnknownTag, tag))
		}

		v, err := e.construct(r, n)
		if err != nil {
			return nil, err
		}

		r.log.Debug("resolved tag",
			zap.String("tag", tag),
			zap.Stringer("kind", e.Kind),
			zap.Int("line", n.Line),
			zap.Any("value", v))

		return v, nil
	}

	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, nodeErr(n, err)
		}

		return v, nil
	case yaml.SequenceNode:
		return common.MapErr(n.Content, r.Resolve)
	case yaml.MappingNode:
		return r.mapping(n)
	default:
		return nil, nodeErr(n, fmt.Errorf("unsupported %s node", nodeKind(n)))
	}
}

// mapping resolves the entries of a mapping node, ignoring its tag.
// Merge keys (<<) contribute entries that explicit keys override.
func (r *Resolver) mapping(n *yaml.Node) (*Mapping, error) {
	m := NewMapping(len(n.Content) / 2)
	own := map[string]bool{}

	for k, v := range common.Pairs(n.Content) {
		if k.Kind == yaml.ScalarNode && k.Tag == mergeTag {
			if err := r.merge(m, own, v); err != nil {
				return nil, err
			}

			continue
		}

		if k.Kind != yaml.ScalarNode {
			return nil, nodeErr(k, fmt.Errorf("mapping key must be a scalar, got %v", nodeKind(k)))
		}

		if own[k.Value] {
			return nil, nodeErr(k, fmt.Errorf("%w %q", ErrDuplicateKey, k.Value))
		}

		val, err := r.Resolve(v)
		if err != nil {
			return nil, err
		}

		own[k.Value] = true
		m.Set(k.Value, val)
	}

	return m, nil
}

func (r *Resolver) merge(m *Mapping, own map[string]bool, v *yaml.Node) error {
	sources := []*yaml.Node{v}
	if v.Kind == yaml.SequenceNode {
		sources = v.Content
	}

	for _, src := range sources {
		val, err := r.Resolve(src)
		if err != nil {
			return err
		}

		mm, ok := val.(*Mapping)
		if !ok {
			return nodeErr(src, fmt.Errorf("merge value must be a mapping, got %T", val))
		}

		for k, mv := range mm.All() {
			if !own[k] && !m.Has(k) {
				m.Set(k, mv)
			}
		}
	}

	return nil
}

// construct builds an instance of t from a mapping node, whatever tag it carries.
func (r *Resolver) construct(t *Type, n *yaml.Node) (Object, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeErr(n, fmt.Errorf("%w %s from %v node", ErrConstruction, t.name, nodeKind(n)))
	}

	m, err := r.mapping(n)
	if err != nil {
		return nil, err
	}

	obj, err := FromOrderedFields(t, m)
	if err != nil {
		return nil, nodeErr(n, err)
	}

	return obj, nil
}

func (r *Resolver) sample(s sampler.Sampler, n *yaml.Node) (any, error) {
	v, err := r.draw(s, n)
	if err != nil {
		return nil, nodeErr(n, fmt.Errorf("%s: %w", sampler.Tag(s), err))
	}

	return v, nil
}

func (r *Resolver) draw(s sampler.Sampler, n *yaml.Node) (any, error) {
	want := map[sampler.Shape]yaml.Kind{
		sampler.ShapeScalar:   yaml.ScalarNode,
		sampler.ShapeSequence: yaml.SequenceNode,
		sampler.ShapeMapping:  yaml.MappingNode,
	}[s.Shape()]

	if n.Kind != want {
		return nil, fmt.Errorf("%w: want %v, got %v node", sampler.ErrShape, s.Shape(), nodeKind(n))
	}

	switch s.Shape() {
	case sampler.ShapeScalar:
		return s.(sampler.ScalarSampler).SampleScalar(r.src, n.Value)
	case sampler.ShapeSequence:
		values, err := common.MapErr(n.Content, r.payloadValue)
		if err != nil {
			return nil, err
		}

		return s.(sampler.SequenceSampler).SampleSequence(r.src, values)
	case sampler.ShapeMapping:
		params := make(map[string]string, len(n.Content)/2)

		for k, v := range common.Pairs(n.Content) {
			key, err := r.payloadValue(k)
			if err != nil {
				return nil, err
			}

			if _, dup := params[key]; dup {
				return nil, fmt.Errorf("%w %q", ErrDuplicateKey, key)
			}

			if params[key], err = r.payloadValue(v); err != nil {
				return nil, err
			}
		}

		return s.(sampler.MappingSampler).SampleMapping(r.src, params)
	}

	return nil, fmt.Errorf("%w: %v", sampler.ErrShape, s.Shape())
}

// payloadValue returns the text a sampler sees for one payload element.
// Tagged elements are resolved first and their value stands in for the
// text, so nested draws happen innermost first.
func (r *Resolver) payloadValue(n *yaml.Node) (string, error) {
	target := n
	if target.Kind == yaml.AliasNode {
		target = target.Alias
	}

	tag := ExplicitTag(target)
	if tag == "" {
		if target.Kind != yaml.ScalarNode {
			return "", nodeErr(target, fmt.Errorf("%w: element must be a scalar, got %v node", sampler.ErrShape, nodeKind(target)))
		}

		return target.Value, nil
	}

	v, err := r.Resolve(n)
	if err != nil {
		return "", err
	}

	text, ok := scalarText(v)
	if !ok {
		return "", nodeErr(target, fmt.Errorf("%w: element %s yields %T, want a scalar", sampler.ErrShape, tag, v))
	}

	return text, nil
}

// scalarText renders a resolved scalar the way it would be written in a
// document.
func scalarText(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return FormatFloat(v), true
	default:
		return "", false
	}
}

// ExplicitTag returns the application tag written on n, or "" for untagged
// nodes and standard !! tags.
func ExplicitTag(n *yaml.Node) string {
	if n.Style&yaml.TaggedStyle == 0 {
		return ""
	}

	tag := n.ShortTag()
	if strings.HasPrefix(tag, "!!") {
		return ""
	}

	return tag
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty"
	}
}
