package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options is the per-project configuration loaded from
// DefaultConfigFile (or an explicit --config path).
type Options struct {
	// Externals lists extra native function signatures to preload into
	// the resolver's externals scope, beyond externals.Standard().
	// Keys are function names, values are already-encoded
	// function<...> signatures.
	Externals map[string]string `yaml:"externals,omitempty"`

	// ImplicitReturns is the implicit_returns setting, reported by
	// ImplicitReturnsEnabled (true when unset). The resolver does not
	// read it: implicit returns are always synthesized for void bodies.
	ImplicitReturns *bool `yaml:"implicit_returns,omitempty"`

	// CachePath is the sqlite incremental-cache location, overridden by
	// --cache on the command line.
	CachePath string `yaml:"cache_path,omitempty"`
}

// ImplicitReturnsEnabled reports whether o permits implicit-return
// synthesis, defaulting to enabled when unset.
func (o *Options) ImplicitReturnsEnabled() bool {
	return o == nil || o.ImplicitReturns == nil || *o.ImplicitReturns
}

// Load reads and parses a YAML options file. A missing file is not an
// error — it returns a zero-value Options, matching a project that
// never opted into any overrides.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Options{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &opts, nil
}
