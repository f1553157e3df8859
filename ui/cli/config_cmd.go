// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/numinput/internal/config"
	"github.com/toeirei/numinput/internal/i18n"
)

// newConfigCmd writes the effective configuration, including the resolved
// fields, so it can be edited as a starting point.
func (a *app) newConfigCmd() *cobra.Command {
	var output string
	var system bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			effective := a.config
			effective.Fields = a.fields

			path := output
			var err error
			if path == "" {
				path, err = config.WriteConfigFile(&effective, system)
			} else {
				err = config.WriteConfigFileTo(&effective, path)
			}
			if err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of the config directory")
	cmd.Flags().BoolVar(&system, "system", false, "write to the system config directory")

	return cmd
}
