package slots

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	strTag   = "!!str"
	intTag   = "!!int"
	floatTag = "!!float"
	boolTag  = "!!bool"
	nullTag  = "!!null"

	// Indent is the number of spaces per nesting level in dumps.
	Indent = 2
)

// Encode converts an instance or a resolved value to a node tree. Objects
// become mappings in field order, tagged when their type shows its tag.
func Encode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case nil:
		return scalar(nullTag, "null"), nil
	case *yaml.Node:
		return v, nil
	case Object:
		return encodeObject(v)
	case *Mapping:
		return encodeMapping(v.All())
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}

		slices.Sort(keys)

		m := NewMapping(len(v))
		for _, k := range keys {
			m.Set(k, v[k])
		}

		return encodeMapping(m.All())
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode}

		for i, item := range v {
			n, err := Encode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			seq.Content = append(seq.Content, n)
		}

		return seq, nil
	case string:
		return scalar(strTag, v), nil
	case bool:
		return scalar(boolTag, strconv.FormatBool(v)), nil
	case int:
		return scalar(intTag, strconv.Itoa(v)), nil
	case int64:
		return scalar(intTag, strconv.FormatInt(v, 10)), nil
	case uint64:
		return scalar(intTag, strconv.FormatUint(v, 10)), nil
	case float64:
		return scalar(floatTag, FormatFloat(v)), nil
	case float32:
		return scalar(floatTag, FormatFloat(float64(v))), nil
	}

	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("cannot encode %T: %w", v, err)
	}

	return &n, nil
}

func encodeObject(obj Object) (*yaml.Node, error) {
	t := obj.SlotType()

	m, err := ToOrderedFields(obj, false)
	if err != nil {
		return nil, err
	}

	n, err := encodeMapping(m.All())
	if err != nil {
		return nil, fmt.Errorf("%s.%w", t.name, err)
	}

	if t.showTag {
		n.Tag = t.Tag()
	}

	return n, nil
}

func encodeMapping(entries iter.Seq2[string, any]) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}

	for k, v := range entries {
		vn, err := Encode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}

		n.Content = append(n.Content, scalar(strTag, k), vn)
	}

	return n, nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// FormatFloat renders f so that it reads back as a float: integral values
// keep a ".0" and large or tiny magnitudes use an exponent.
func FormatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		if !strings.Contains(s, ".") {
			s = strings.Replace(s, "e", ".0e", 1)
		}

		return s
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// EncodeDocuments writes each value as its own document, separated by "---".
func EncodeDocuments(w io.Writer, values ...any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)

	for i, v := range values {
		n, err := Encode(v)
		if err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}

		if err := enc.Encode(n); err != nil {
			return fmt.Errorf("document %d: %w", i, err)
		}
	}

	return enc.Close()
}

// Marshal renders obj as a single document.
func Marshal(obj Object) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeDocuments(&buf, obj); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ToText renders obj as a single document string.
func ToText(obj Object) (string, error) {
	b, err := Marshal(obj)
	return string(b), err
}

// ToFile writes obj to path as a single document.
func ToFile(obj Object, path string) error {
	data, err := Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", obj.SlotType().name, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write slot file %s: %w", path, err)
	}

	return nil
}
