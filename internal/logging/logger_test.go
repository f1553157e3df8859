// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// swapLogger points L at a buffer for the duration of the test.
func swapLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	t.Cleanup(func() { L = prev })
	return &buf
}

// TestLoggingHelpers_WriteToBuffer verifies the helpers write formatted
// messages to the package-level logger `L`.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t)
	L.SetLevel(clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestSetLevel(t *testing.T) {
	buf := swapLogger(t)

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel(warn): %v", err)
	}
	Infof("hidden")
	Warnf("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn message missing: %s", out)
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetDebugAndOutput(t *testing.T) {
	swapLogger(t)
	var other bytes.Buffer
	SetOutput(&other)

	SetDebug(true)
	Debugf("visible")
	SetDebug(false)
	Debugf("suppressed")

	out := other.String()
	if !strings.Contains(out, "visible") || strings.Contains(out, "suppressed") {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestWith(t *testing.T) {
	buf := swapLogger(t)

	With("field", "months").Info("changed", "value", 12)

	out := buf.String()
	if !strings.Contains(out, "field=months") || !strings.Contains(out, "value=12") {
		t.Fatalf("missing structured fields: %s", out)
	}
}
