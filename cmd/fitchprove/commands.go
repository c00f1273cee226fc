package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/brevis-logic/fitch/config"
)

// MainConfig holds the options shared by every subcommand.
type MainConfig struct {
	Ascii  bool `cli:"name=ascii desc='use the ASCII connective glyphs instead of Unicode'"`
	Color  bool `cli:"name=color desc='force colored Fitch output'"`
	Budget int  `cli:"name=budget desc='maximum proof size to search (0: use the profile default, uncapped)'"`

	Main *cli.Command
}

// MainCommand builds the fitchprove command tree: a root command with
// shared options plus a prove and an explain subcommand, mirroring
// cmd/o's MainCommand/WithSubs construction.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "fitchprove").
		WithSynopsis("fitchprove [opts] command [opts]").
		WithDescription("fitchprove searches for natural-deduction proofs of propositional formulas and renders them Fitch-style.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fitchMain(cfg, cc, args)
		}).
		WithSubs(
			ProveCommand(cfg),
			ExplainCommand(cfg),
		)
}

func fitchMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

// colorOptSet reports whether the user explicitly passed -color, as
// opposed to it defaulting false; mirrors cmd/o's own colorsSet check in
// configs.go, since the cli library has no built-in way to distinguish
// "false because unset" from "false because passed".
func (cfg *MainConfig) colorOptSet() bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" {
			return opt.Value != nil
		}
	}
	return false
}

// wantColor decides whether to color a render written to w: an explicit
// -color flag wins, then the loaded profile's Color setting, then TTY
// detection, exactly as cmd/o's encOpts decides between -color, and
// isatty.IsTerminal.
func (cfg *MainConfig) wantColor(profile *config.Profile, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.colorOptSet() {
		return false
	}
	if profile.Color != nil {
		return *profile.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// effectiveBudget prefers an explicit -budget flag over the loaded
// profile's BudgetCap; 0 means uncapped.
func (cfg *MainConfig) effectiveBudget(profile *config.Profile) int {
	if cfg.Budget > 0 {
		return cfg.Budget
	}
	return profile.BudgetCap
}
