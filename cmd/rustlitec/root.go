package main

import (
	"github.com/spf13/cobra"

	"github.com/rustlite-lang/rustlitec/internal/rtconfig"
)

// version is stamped at build time via -ldflags; "dev" otherwise.
var version = "dev"

// driverFlags collects the persistent flag values. resolveConfig asks
// Cobra whether each was explicitly set, so rtconfig can layer flags
// over a config file without a flag's zero value silently overriding a
// configured one.
type driverFlags struct {
	configPath string
	format     string
	noColor    bool
	tabWidth   int
}

func newRootCmd() *cobra.Command {
	flags := &driverFlags{}

	root := &cobra.Command{
		Use:          "rustlitec",
		Short:        "rustlitec tokenizes and parses rustlite source files",
		Version:      version,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a .rustlite.yaml config file")
	root.PersistentFlags().StringVar(&flags.format, "format", "", `ast output format: "json" or "sexpr"`)
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable ANSI color in diagnostic output")
	root.PersistentFlags().IntVar(&flags.tabWidth, "tab-width", 0, "tab width used for future column-aware diagnostics")

	root.AddCommand(newTokensCmd(flags))
	root.AddCommand(newParseCmd(flags))
	root.AddCommand(newASTCmd(flags))

	return root
}

// resolveConfig loads the project config file (if any) and layers the
// persistent flags over it.
func (f *driverFlags) resolveConfig(cmd *cobra.Command) (rtconfig.Config, error) {
	path := f.configPath
	explicit := path != ""

	if path == "" {
		path = ".rustlite.yaml"
	}

	cfg, err := rtconfig.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	flagsChanged := cmd.Flags()

	return cfg.ApplyFlags(
		f.format, flagsChanged.Changed("format"),
		f.noColor, flagsChanged.Changed("no-color"),
		f.tabWidth, flagsChanged.Changed("tab-width"),
	), nil
}
