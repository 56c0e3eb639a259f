package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// openInput opens a file argument, "-" being standard input.
func openInput(arg string) (io.ReadCloser, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(arg)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", arg, err)
	}

	return f, nil
}

// documents parses every document of r. On a syntax error it returns the
// documents read so far together with the error.
func documents(r io.Reader) ([]*yaml.Node, error) {
	dec := yaml.NewDecoder(r)

	var docs []*yaml.Node

	for {
		doc := &yaml.Node{}

		err := dec.Decode(doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return docs, err
		}

		docs = append(docs, doc)
	}
}

func displayName(arg string) string {
	if arg == "-" {
		return "<stdin>"
	}

	return arg
}
