package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "slot-machine").
		WithSynopsis("slot-machine [-v] command [opts]").
		WithDescription("slot-machine resolves sampler tags in slot documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return slotMain(cfg, cc, args)
		}).
		WithSubs(
			SampleCommand(cfg),
			CheckCommand(cfg),
			TagsCommand(cfg))
}

func slotMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}

	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}

	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}

	return err
}

func SampleCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SampleConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Sample, "sample").
		WithAliases("s").
		WithSynopsis("sample [-n N] [-seed S] [files]").
		WithDescription("Resolve every sampler tag and print the drawn documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sample(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("Report unknown tags and malformed sampler payloads without stopping at the first.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func TagsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TagsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Tags, "tags").
		WithSynopsis("tags").
		WithDescription("List the registered tags and the node shape each expects.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tags(cfg, cc, args)
		})
}
