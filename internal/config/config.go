// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the numinput configuration with Viper from defaults,
// numinput.yaml, NUMINPUT_* environment variables (optionally seeded from a
// .env file) and command line flags, and writes it back as YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/numinput/core/numeric"
)

const (
	configName = "numinput"
	envPrefix  = "numinput"
	dotEnvFile = ".env"
)

// Config is the application configuration.
type Config struct {
	Language string  `mapstructure:"language" yaml:"language"`
	LogLevel string  `mapstructure:"log-level" yaml:"log-level"`
	LogFile  string  `mapstructure:"log-file" yaml:"log-file"`
	Debug    bool    `mapstructure:"debug" yaml:"debug"`
	Fields   []Field `mapstructure:"fields" yaml:"fields"`
}

// Field configures one numeric input of the demo form.
type Field struct {
	ID             string `mapstructure:"id" yaml:"id"`
	Label          string `mapstructure:"label" yaml:"label"`
	numeric.Config `mapstructure:",squash" yaml:",inline"`
}

// Defaults are the viper defaults of the scalar settings.
func Defaults() map[string]any {
	return map[string]any{
		"language":  "en",
		"log-level": "info",
		"log-file":  "",
		"debug":     false,
	}
}

// DefaultFields is the demo form used when the configuration has none: a
// month count and four amounts.
func DefaultFields() []Field {
	months := numeric.DefaultConfig()
	months.Max = 600
	months.Default = 12

	fields := []Field{{ID: "months", Config: months}}
	for i := 1; i <= 4; i++ {
		fields = append(fields, Field{ID: fmt.Sprintf("term%d", i), Config: numeric.DefaultConfig()})
	}
	return fields
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "numinput")
		default:
			configDir = "/etc/numinput"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "numinput")
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additional_config_file_path *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	// 3. Explicit --config path has the highest precedence for files.
	if additional_config_file_path != nil && *additional_config_file_path != "" {
		v.SetConfigFile(*additional_config_file_path)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file. Not finding one is fine, but an
	// empty file is reported as not found so callers can write defaults.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	} else if isEmptyFile(v.ConfigFileUsed()) {
		return c, viper.ConfigFileNotFoundError{}
	}

	// 6. Seed the environment from .env without overriding real variables.
	if err := loadDotEnv(dotEnvFile); err != nil {
		return c, err
	}

	// 7. Read from environment variables
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// 8. cli flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, nil
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Size() == 0
}

func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("could not load %s: %w", path, err)
}

func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0644)
}
