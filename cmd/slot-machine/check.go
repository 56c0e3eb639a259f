package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"gopkg.in/yaml.v3"

	"slot-machine/internal/diagnostic"
	"slot-machine/internal/match"
	"slot-machine/sampler"
	"slot-machine/slots"
)

const (
	codeParse      = "parse"
	codeUnknownTag = "unknown_tag"
	codeBadSampler = "bad_sampler"
	codeBadObject  = "bad_object"
	codeResolve    = "resolve"
	codeEmpty      = "empty_document"
	codeUntagged   = "untagged"
	codeIO         = "io"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	codec, sync, err := cfg.codec()
	if err != nil {
		return err
	}
	defer sync()

	diags := checkInputs(codec, inputs(args))
	if err := report(cc.Out, &diags); err != nil {
		return err
	}

	if diags.HasErrors() {
		return cli.ExitCodeErr(1)
	}

	return nil
}

func report(w io.Writer, diags *diagnostic.Diagnostics) error {
	if err := diags.Print(w); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d error(s), %d warning(s)\n", len(diags.Errors), len(diags.Warnings))
	if diags.HasErrors() {
		summary = color.RedString(summary)
	}

	_, err := io.WriteString(w, summary)

	return err
}

func checkInputs(codec *slots.Codec, args []string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, arg := range args {
		diags.Merge(checkInput(codec, arg))
	}

	return diags
}

func checkInput(codec *slots.Codec, arg string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	name := displayName(arg)

	rc, err := openInput(arg)
	if err != nil {
		diags.AddError(codeIO, err.Error(), diagnostic.Position{File: name})
		return diags
	}
	defer rc.Close()

	docs, err := documents(rc)

	for i, doc := range docs {
		c := &checker{codec: codec, file: name, doc: i + 1, failed: map[*yaml.Node]bool{}}
		c.document(doc)
		diags.Merge(c.diags)
	}

	if err != nil {
		diags.AddError(codeParse, err.Error(), diagnostic.Position{File: name, Document: len(docs) + 1})
	}

	return diags
}

// checker walks one document bottom-up. A tagged node is resolved only when
// nothing below it failed, so each problem is reported once at its source.
type checker struct {
	codec  *slots.Codec
	file   string
	doc    int
	tagged int
	failed map[*yaml.Node]bool
	diags  diagnostic.Diagnostics
}

func (c *checker) pos(n *yaml.Node) diagnostic.Position {
	return diagnostic.Position{File: c.file, Document: c.doc, Line: n.Line, Column: n.Column}
}

func (c *checker) document(doc *yaml.Node) {
	if len(doc.Content) == 0 || isNull(doc.Content[0]) {
		c.diags.AddWarning(codeEmpty, fmt.Sprintf("document %d is empty", c.doc), c.pos(doc))
		return
	}

	c.walk(doc.Content[0])

	if c.tagged == 0 {
		c.diags.AddInfo(codeUntagged, fmt.Sprintf("document %d has no tags to resolve", c.doc), c.pos(doc.Content[0]))
	}
}

func (c *checker) walk(n *yaml.Node) bool {
	if n.Kind == yaml.AliasNode {
		return !c.failed[n.Alias]
	}

	ok := true
	for _, child := range n.Content {
		if !c.walk(child) {
			ok = false
		}
	}

	tag := slots.ExplicitTag(n)
	if tag == "" || !ok {
		c.failed[n] = !ok
		return ok
	}

	c.tagged++

	if _, err := c.codec.Resolve(n); err != nil {
		msg := strings.TrimPrefix(err.Error(), fmt.Sprintf("line %d, column %d: ", n.Line, n.Column))
		if errors.Is(err, slots.ErrUnknownTag) {
			msg += didYouMean(tag, c.codec.Registry().Tags())
		}

		c.diags.AddError(errorCode(err), msg, c.pos(n))
		c.failed[n] = true

		return false
	}

	return true
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, slots.ErrUnknownTag):
		return codeUnknownTag
	case errors.Is(err, sampler.ErrNumber),
		errors.Is(err, sampler.ErrPartCount),
		errors.Is(err, sampler.ErrShape),
		errors.Is(err, sampler.ErrRange),
		errors.Is(err, sampler.ErrEmpty),
		errors.Is(err, sampler.ErrUnknownParam):
		return codeBadSampler
	case errors.Is(err, slots.ErrUnknownField),
		errors.Is(err, slots.ErrMissingField),
		errors.Is(err, slots.ErrFieldType),
		errors.Is(err, slots.ErrConstruction):
		return codeBadObject
	default:
		return codeResolve
	}
}

func didYouMean(tag string, known []string) string {
	s := match.Suggest(tag, known, 2)
	if len(s) == 0 {
		return ""
	}

	return fmt.Sprintf(" (did you mean %s?)", strings.Join(s, " or "))
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null" && slots.ExplicitTag(n) == ""
}
