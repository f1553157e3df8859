// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the numinput command line with Cobra: the root command
// runs the TUI, "config" writes the effective configuration and "version"
// prints build information.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/numinput/internal/config"
	"github.com/toeirei/numinput/internal/i18n"
	"github.com/toeirei/numinput/internal/logging"
	"github.com/toeirei/numinput/ui/tui"
)

// numeric flags override the matching setting of every field
var numericFlags = []string{"min", "max", "step", "default"}

// app carries the state of one command invocation.
type app struct {
	cfgFile string
	config  config.Config
	fields  []config.Field
}

// Execute runs the CLI entrypoint.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates a fresh root command. Tests use it for isolated runs.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "numinput",
		Short: i18n.T("cli.short"),
		Long: `numinput shows a form of bounded numeric inputs with thousands
grouping. Typed values are checked when a field loses focus, invalid
entries revert to the last valid value.

Running without a subcommand launches the interactive TUI.`,
		Version:           compositeVersion(resolveBuildVersion(nil)),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file")
	flags.String("language", "en", `UI and number format language ("en", "de")`)
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file while the TUI runs")
	flags.Bool("debug", false, "show the debug panel")
	flags.Int("min", 0, "minimum value of every field")
	flags.Int("max", 0, "maximum value of every field")
	flags.Int("step", 0, "step of every field")
	flags.Int("default", 0, "default value of every field")

	cmd.AddCommand(a.newConfigCmd(), newVersionCmd())

	return cmd
}

// setup loads the configuration and initialises i18n and logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.config, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	// running without a config file uses the defaults
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return errors.New(i18n.T("config.error_load", err))
	}
	if a.config.Language == "" {
		a.config.Language = config.Defaults()["language"].(string)
	}

	i18n.Init(a.config.Language)

	if err := logging.SetLevel(a.config.LogLevel); err != nil {
		return err
	}

	a.fields, err = resolveFields(cmd, a.config)
	return err
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// an explicit file must exist, otherwise viper silently runs on defaults
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// resolveFields picks the configured fields or the default form and
// applies the numeric flags. Fields without a locale follow the language.
func resolveFields(cmd *cobra.Command, c config.Config) ([]config.Field, error) {
	fields := c.Fields
	if len(fields) == 0 {
		fields = config.DefaultFields()
		for i := range fields {
			fields[i].Locale = ""
		}
	}

	overrides := map[string]int{}
	for _, name := range numericFlags {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return nil, fmt.Errorf("could not read --%s flag: %w", name, err)
		}
		overrides[name] = v
	}

	resolved := make([]config.Field, len(fields))
	for i, f := range fields {
		if v, ok := overrides["min"]; ok {
			f.Min = v
		}
		if v, ok := overrides["max"]; ok {
			f.Max = v
		}
		if v, ok := overrides["step"]; ok {
			f.Step = v
		}
		if v, ok := overrides["default"]; ok {
			f.Default = v
		}
		if f.Locale == "" {
			f.Locale = c.Language
		}
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.ID, err)
		}
		resolved[i] = f
	}
	return resolved, nil
}

// runTUI starts the TUI. Log output would corrupt the alternate screen, so
// it goes to --log-file or nowhere while the TUI runs.
func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	var out io.Writer = io.Discard
	if a.config.LogFile != "" {
		f, err := os.OpenFile(a.config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logging.SetOutput(out)
	defer logging.SetOutput(cmd.ErrOrStderr())

	logging.Infof("starting TUI with %d fields", len(a.fields))
	return tui.Run(tui.Options{Fields: a.fields, Debug: a.config.Debug})
}
