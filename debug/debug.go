// Package debug provides lightweight, env-var-gated tracing for the
// search engine and arranger. It is not a general logging library: it
// exists so a developer chasing a runaway search can flip on tracing
// without threading a logger through every call.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Search  bool
	Arrange bool
	Config  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Search = boolEnv("FITCH_DEBUG_SEARCH")
	d.Arrange = boolEnv("FITCH_DEBUG_ARRANGE")
	d.Config = boolEnv("FITCH_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Search reports whether FITCH_DEBUG_SEARCH tracing is enabled.
func Search() bool {
	return d.Search
}

// Arrange reports whether FITCH_DEBUG_ARRANGE tracing is enabled.
func Arrange() bool {
	return d.Arrange
}

// Config reports whether FITCH_DEBUG_CONFIG tracing is enabled.
func Config() bool {
	return d.Config
}

// Logf writes a trace line to stderr, unconditionally; callers gate on
// Search()/Arrange() first.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// LogAny writes v to stderr as JSON, falling back to %v if it can't be
// marshaled.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
