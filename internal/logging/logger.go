// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// in logging.go instead of reaching for L directly.
var L = clog.NewWithOptions(os.Stderr, clog.Options{
	Prefix: "numinput",
	Level:  clog.InfoLevel,
})

// SetOutput redirects the logger, e.g. to a file while the TUI owns the
// terminal.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// SetLevel parses one of debug, info, warn, error or fatal.
func SetLevel(level string) error {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}
