package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/brevis-logic/fitch/config"
	"github.com/brevis-logic/fitch/search"
)

// explainDefaultCap bounds the size ladder when no budget is configured.
// explain's whole point is to print one line per size tried; an
// uncapped search runs forever on a non-theorem, which would mean
// explain never prints anything at all.
const explainDefaultCap = 60

// ExplainConfig is the explain subcommand's own config.
type ExplainConfig struct {
	*MainConfig

	Explain *cli.Command
}

// ExplainCommand walks the iterative-deepening size ladder for a
// formula: reports whether a proof was found at each size up to the
// effective budget, and, for every size that succeeds, diffs its
// rendered proof against the previous successful one. New relative to
// original_source/main.py's single-shot driver; exercises go-diff.
func ExplainCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExplainConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Explain, "explain").
		WithAliases("x").
		WithSynopsis("explain <formula>").
		WithDescription("explain walks the iterative-deepening size ladder for a formula, showing the diff between consecutive successful proofs.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runExplain(cfg, cc, args)
		})
}

func runExplain(cfg *ExplainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: explain requires a formula argument", cli.ErrUsage)
	}
	goal, err := ReadFormula(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	profile, err := config.Load()
	if err != nil {
		return err
	}

	budget := cfg.effectiveBudget(profile)
	if budget <= 0 {
		budget = explainDefaultCap
	}

	dmp := diffmatchpatch.New()
	prevRendered := ""
	anyFound := false

	for size := 1; size <= budget; size++ {
		n, ok := search.FindProof(goal, nil, size)
		if !ok {
			fmt.Fprintf(cc.Out, "size %2d: no proof\n", size)
			continue
		}
		anyFound = true
		rendered := renderProof(cfg.MainConfig, profile, n, cc)
		fmt.Fprintf(cc.Out, "size %2d: proof found\n", size)
		if prevRendered == "" {
			fmt.Fprintln(cc.Out, rendered)
		} else {
			diffs := dmp.DiffMain(prevRendered, rendered, false)
			fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		}
		prevRendered = rendered
	}

	if !anyFound {
		fmt.Fprintf(cc.Out, "no proof of %s found within budget %d\n", renderFormula(cfg.MainConfig, goal), budget)
	}
	return nil
}
