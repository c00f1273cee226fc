package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/brevis-logic/fitch/config"
	"github.com/brevis-logic/fitch/fitch"
	"github.com/brevis-logic/fitch/format"
	"github.com/brevis-logic/fitch/proof"
	"github.com/brevis-logic/fitch/prop"
	"github.com/brevis-logic/fitch/search"
)

// ProveConfig is the prove subcommand's own config, embedding the
// shared MainConfig the way cmd/o's per-subcommand configs embed
// *MainConfig.
type ProveConfig struct {
	*MainConfig

	Prove *cli.Command
}

// ProveCommand searches for a proof of the formula given on the command
// line and renders it Fitch-style, or reports that no proof was found
// within the effective budget.
func ProveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProveConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Prove, "prove").
		WithAliases("p").
		WithSynopsis("prove <formula>").
		WithDescription("prove searches for a natural-deduction proof of a propositional formula and renders it Fitch-style.").
		WithRun(func(cc *cli.Context, args []string) error {
			return runProve(cfg, cc, args)
		})
}

func runProve(cfg *ProveConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: prove requires a formula argument", cli.ErrUsage)
	}
	goal, err := ReadFormula(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	profile, err := config.Load()
	if err != nil {
		return err
	}

	n, ok := proveGoal(cfg.MainConfig, profile, goal)
	if !ok {
		fmt.Fprintf(cc.Out, "no proof of %s found within budget %d\n", renderFormula(cfg.MainConfig, goal), cfg.effectiveBudget(profile))
		return nil
	}

	fmt.Fprintln(cc.Out, renderProof(cfg.MainConfig, profile, n, cc))
	return nil
}

// proveGoal runs iterative-deepening search up to the effective budget,
// or uncapped (search.Prove, which runs forever on a non-theorem) when
// no budget was configured.
func proveGoal(cfg *MainConfig, profile *config.Profile, goal *prop.Formula) (*proof.Node, bool) {
	if budget := cfg.effectiveBudget(profile); budget > 0 {
		return search.ProveWithBudget(goal, budget)
	}
	return search.Prove(goal), true
}

func renderFormula(cfg *MainConfig, f *prop.Formula) string {
	if cfg.Ascii {
		return format.FormulaASCII(f)
	}
	return format.Formula(f)
}

func renderProof(cfg *MainConfig, profile *config.Profile, n *proof.Node, cc *cli.Context) string {
	var opts []fitch.RenderOption
	if cfg.Ascii {
		opts = append(opts, fitch.WithASCII())
	}
	if cfg.wantColor(profile, cc.Out) {
		opts = append(opts, fitch.WithColor(fitch.NewColors()))
	}
	return fitch.Render(n, opts...)
}
