// Package config loads an optional prover profile: the search budget
// cap and whether to color Fitch output. Grounded on
// go-tony/dirbuild/load_env.go's env-var-gated load-or-nil pattern,
// retargeted from a Tony-IR env blob to a YAML profile file (this
// module has no document format of its own for an env blob to decode
// through).
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/brevis-logic/fitch/debug"
)

// ProfileEnv names the environment variable holding the path to a YAML
// profile file. If unset, Load returns Default().
const ProfileEnv = "FITCH_PROFILE"

// Profile configures one run of the prover CLI.
type Profile struct {
	// BudgetCap bounds the iterative-deepening search; 0 means
	// uncapped (search until a proof is found, possibly forever on a
	// non-theorem).
	BudgetCap int `yaml:"budget_cap"`

	// Color controls ANSI coloring of Fitch output. Nil means "decide
	// from the output stream", matching isatty detection.
	Color *bool `yaml:"color"`
}

// Default is the profile used when no FITCH_PROFILE is set.
func Default() *Profile {
	return &Profile{BudgetCap: 0}
}

// Load reads the profile named by $FITCH_PROFILE, or returns Default()
// if that variable is unset.
func Load() (*Profile, error) {
	path := os.Getenv(ProfileEnv)
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading profile %s: %w", path, err)
	}
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: parsing profile %s: %w", path, err)
	}
	if debug.Config() {
		debug.Logf("config: loaded profile from %s: %+v\n", path, p)
	}
	return p, nil
}
