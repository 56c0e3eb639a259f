package slots

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrSchema reports an invalid type definition.
	ErrSchema = errors.New("invalid schema")
	// ErrParse reports a document that is not well-formed YAML.
	ErrParse = errors.New("parse error")
	// ErrConstruction reports a resolved value that is neither the target
	// type nor a plain mapping.
	ErrConstruction = errors.New("cannot construct")
	// ErrUnknownField reports a mapping key that is not a declared field.
	ErrUnknownField = errors.New("unknown field")
	// ErrMissingField reports a declared field without value or default.
	ErrMissingField = errors.New("missing field")
	// ErrFieldType reports a value that does not match the declared kind.
	ErrFieldType = errors.New("field type mismatch")
	// ErrUnknownTag reports a tag with no registered constructor.
	ErrUnknownTag = errors.New("unknown tag")
	// ErrDuplicateTag reports a second registration under the same tag.
	ErrDuplicateTag = errors.New("duplicate tag")
	// ErrDuplicateKey reports a mapping that repeats a key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// nodeErr prefixes err with the document position of n.
func nodeErr(n *yaml.Node, err error) error {
	if n == nil || n.Line == 0 {
		return err
	}

	return fmt.Errorf("line %d, column %d: %w", n.Line, n.Column, err)
}
