package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"slot-machine/sampler"
	"slot-machine/slots"
)

func tags(cfg *TagsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tags.Parse(cc, args)
	if err != nil {
		cfg.Tags.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	if len(args) != 0 {
		return fmt.Errorf("%w: tags takes no arguments", cli.ErrUsage)
	}

	return listTags(cc.Out, slots.NewStandardRegistry())
}

// listTags writes one line per entry of reg: tag, entry kind and the node
// shape the tag expects.
func listTags(w io.Writer, reg *slots.Registry) error {
	entries := reg.Entries()

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Tag))
	}

	for _, e := range entries {
		pad := fmt.Sprintf("%-*s", width, e.Tag)
		if _, err := fmt.Fprintf(w, "%s  %-7s  %s\n", color.CyanString(pad), e.Kind, entryShape(e)); err != nil {
			return err
		}
	}

	return nil
}

func entryShape(e *slots.Entry) string {
	switch e.Kind {
	case slots.EntrySampler:
		return e.Sampler.Shape().String()
	case slots.EntryType:
		return sampler.ShapeMapping.String()
	default:
		return "any"
	}
}
