package main

import (
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"slot-machine/slots"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log every resolved tag to stderr'"`

	Main *cli.Command
}

type SampleConfig struct {
	*MainConfig
	N    int `cli:"name=n desc='draw each document n times'"`
	Seed int `cli:"name=seed desc='seed for reproducible draws (0 draws from the shared source)'"`

	Sample *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type TagsConfig struct {
	*MainConfig

	Tags *cli.Command
}

func (cfg *MainConfig) logger() (*zap.Logger, error) {
	if !cfg.Verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

// codec builds the codec shared by every subcommand: the standard samplers
// with the given options.
func (cfg *MainConfig) codec(opts ...slots.Option) (*slots.Codec, func(), error) {
	log, err := cfg.logger()
	if err != nil {
		return nil, nil, err
	}

	opts = append([]slots.Option{slots.WithLogger(log)}, opts...)

	return slots.NewCodec(slots.NewStandardRegistry(), opts...), func() { _ = log.Sync() }, nil
}

// inputs maps an empty argument list to standard input.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}

	return args
}
