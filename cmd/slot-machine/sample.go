package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/scott-cotton/cli"

	"slot-machine/slots"
)

func sample(cfg *SampleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sample.Parse(cc, args)
	if err != nil {
		cfg.Sample.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	if cfg.N < 0 {
		return fmt.Errorf("%w: -n must not be negative, got %d", cli.ErrUsage, cfg.N)
	}

	var opts []slots.Option
	if cfg.Seed != 0 {
		opts = append(opts, slots.WithSource(seededSource(uint64(cfg.Seed))))
	}

	codec, sync, err := cfg.codec(opts...)
	if err != nil {
		return err
	}
	defer sync()

	return sampleInputs(codec, max(cfg.N, 1), cc.Out, inputs(args))
}

func seededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5eed))
}

// sampleInputs resolves each document of each input n times and writes the
// draws to w as one document stream.
func sampleInputs(codec *slots.Codec, n int, w io.Writer, args []string) error {
	var out []any

	for _, arg := range args {
		values, err := sampleInput(codec, n, arg)
		if err != nil {
			return err
		}

		out = append(out, values...)
	}

	if err := slots.EncodeDocuments(w, out...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	return nil
}

func sampleInput(codec *slots.Codec, n int, arg string) ([]any, error) {
	rc, err := openInput(arg)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	docs, err := documents(rc)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", displayName(arg), err)
	}

	var out []any

	for i, doc := range docs {
		for range n {
			v, err := codec.Resolve(doc)
			if err != nil {
				return nil, fmt.Errorf("%s: document %d: %w", displayName(arg), i, err)
			}

			out = append(out, v)
		}
	}

	return out, nil
}
