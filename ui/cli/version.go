// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/numinput/buildvars"
)

const modulePath = "github.com/toeirei/numinput"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// no config needed to print the version
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	if c != "" && c != "dev" {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}

// resolveBuildVersion computes the best-available version, commit and build
// date. If info is nil, it reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (version, commit, date string) {
	version = buildvars.VersionOrDefault("dev")
	commit = buildvars.CommitOrDefault("dev")
	date = buildvars.BuildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		// some build paths only record the module as a dependency
		if version == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					version = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && s.Value != "":
				commit = s.Value
			case s.Key == "vcs.time" && s.Value != "":
				date = s.Value
			}
		}
	}

	// a commit from ldflags still beats no version at all
	if version == "dev" && commit != "dev" && commit != "" {
		version = commit
	}

	return version, commit, date
}
