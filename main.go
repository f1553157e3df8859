// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for numinput.
//
// Usage:
//
//	go run . [flags]
//	./numinput [flags]
//
// This launches the numinput TUI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/numinput/internal/logging"
	"github.com/toeirei/numinput/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("numinput: %v", err)
		os.Exit(1)
	}
}
