// Package rtconfig resolves rustlitec's driver-level options: output
// format, color, and tab width. Values come from CLI flags layered
// over an optional .rustlite.yaml project file. Nothing here is read
// by the lexer or parser core, which takes no configuration at all.
package rtconfig

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Config holds resolved driver options. Once returned from Load, a
// Config is immutable — there is no global mutable configuration
// state, the same rule spec.md applies to the core.
type Config struct {
	Format   string `yaml:"format"`
	NoColor  bool   `yaml:"noColor"`
	TabWidth int    `yaml:"tabWidth"`
}

// defaults returns the built-in Config used when no file is present
// and no flags override it.
func defaults() Config {
	return Config{Format: "sexpr", NoColor: false, TabWidth: 4}
}

// Load resolves a Config by reading path (if non-empty and present)
// over the built-in defaults. A missing path that was explicitly
// requested is an error; an unset path that simply doesn't exist on
// disk silently falls back to defaults.
func Load(path string, explicit bool) (Config, error) {
	cfg := defaults()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}

		return cfg, errors.Annotatef(err, "read config %q", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotatef(err, "parse config %q", path)
	}

	return cfg, nil
}

// ApplyFlags layers explicitly-set CLI flag values over cfg, returning
// the merged result. Flags always win over file configuration.
func (cfg Config) ApplyFlags(format string, formatSet bool, noColor bool, noColorSet bool, tabWidth int, tabWidthSet bool) Config {
	if formatSet {
		cfg.Format = format
	}

	if noColorSet {
		cfg.NoColor = noColor
	}

	if tabWidthSet {
		cfg.TabWidth = tabWidth
	}

	return cfg
}
