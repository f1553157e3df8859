// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/numinput/internal/config"
)

// isolate points the user config dir and the working directory at fresh
// temp dirs so no real numinput.yaml or .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(t.TempDir())
	return tmp
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "en" || got.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if len(got.Fields) != 0 {
		t.Fatalf("expected no fields, got %+v", got.Fields)
	}
}

func TestLoadConfig_EmptyCandidate_TreatedAsNotFound(t *testing.T) {
	tmp := isolate(t)

	cfgDir := filepath.Join(tmp, "numinput")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "numinput.yaml"), nil, 0o644); err != nil {
		t.Fatalf("create empty file: %v", err)
	}

	_, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	isolate(t)
	yaml := `language: de
log-level: debug
fields:
  - id: months
    label: Months
    min: 1
    max: 480
    step: 1
    default: 12
    background: "#333"
  - id: term
    min: 10
    max: 20
    step: 5
    default: 15
    locale: de
`
	file := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.LogLevel != "debug" {
		t.Fatalf("unexpected scalars: %+v", got)
	}
	if len(got.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(got.Fields))
	}
	months := got.Fields[0]
	if months.ID != "months" || months.Label != "Months" || months.Max != 480 || months.Default != 12 || months.Background != "#333" {
		t.Fatalf("unexpected months field: %+v", months)
	}
	if term := got.Fields[1]; term.Step != 5 || term.Locale != "de" {
		t.Fatalf("unexpected term field: %+v", term)
	}
}

func TestLoadConfig_EnvAndDotEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NUMINPUT_LANGUAGE", "de")
	if err := os.WriteFile(".env", []byte("NUMINPUT_LOG_LEVEL=warn\nNUMINPUT_LANGUAGE=fr\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("NUMINPUT_LOG_LEVEL") })

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("real environment must win over .env, got %q", got.Language)
	}
	if got.LogLevel != "warn" {
		t.Fatalf("expected log level from .env, got %q", got.LogLevel)
	}
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	isolate(t)
	cmd := &cobra.Command{}
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("language", "de"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Fatalf("expected flag value, got %q", got.Language)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de", LogLevel: "warn"}
	field := cfg.Field{ID: "months", Label: "Months"}
	field.Min, field.Max, field.Step, field.Default = 1, 480, 1, 12
	c.Fields = append(c.Fields, field)

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	want, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if path != want {
		t.Fatalf("written to %s, expected %s", path, want)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || len(got.Fields) != 1 || got.Fields[0].Max != 480 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestDefaultFields_AreValid(t *testing.T) {
	fields := cfg.DefaultFields()
	if len(fields) != 5 || fields[0].ID != "months" || fields[4].ID != "term4" {
		t.Fatalf("unexpected default fields: %+v", fields)
	}
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			t.Fatalf("field %s: %v", f.ID, err)
		}
	}
	if fields[0].InitialValue() != 12 {
		t.Fatalf("months should start at 12, got %d", fields[0].InitialValue())
	}
}
