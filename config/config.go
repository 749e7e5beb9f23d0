// Package config loads the solver's run-time knobs: the trace verbosity
// and a recursion-depth guard for deep formulas.
package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/jaanos/propsat/tracelog"
)

// Config is the solver's run-time configuration.
type Config struct {
	// TraceLevel is one of [0,5]; see tracelog.Level.
	TraceLevel int `yaml:"traceLevel"`
	// MaxRecursionDepth is a recursion-depth setting for callers to pass
	// on; zero means unbounded. This package only loads it: no function in
	// formula or dag reads it, so their recursion is not bounded by it.
	MaxRecursionDepth int `yaml:"maxRecursionDepth"`
}

// Default is the configuration used when none is loaded.
var Default = Config{TraceLevel: 0, MaxRecursionDepth: 0}

// Load parses a YAML configuration document.
func Load(data []byte) (Config, error) {
	cfg := Default
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config.Load")
	}
	if cfg.TraceLevel < 0 || cfg.TraceLevel > 5 {
		return Config{}, errors.Errorf("config.Load: traceLevel %d out of range [0,5]", cfg.TraceLevel)
	}
	return cfg, nil
}

// Logger builds the tracelog.Logger this configuration specifies.
func (c Config) Logger() tracelog.Logger {
	return tracelog.New(tracelog.Level(c.TraceLevel))
}
