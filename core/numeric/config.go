// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"golang.org/x/text/language"
)

// Defaults applied by DefaultConfig.
const (
	DefaultMin    = 1
	DefaultMax    = 9_999_999
	DefaultStep   = 1
	DefaultValue  = 1000
	DefaultLocale = "en"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid numeric input config")

// Config is supplied by the host and treated as immutable for the lifetime
// of a Control. Negative bounds and fractional steps are not supported.
type Config struct {
	Min         int    `mapstructure:"min" yaml:"min" validate:"gte=0"`
	Max         int    `mapstructure:"max" yaml:"max" validate:"gtefield=Min"`
	Step        int    `mapstructure:"step" yaml:"step" validate:"gte=1"`
	Default     int    `mapstructure:"default" yaml:"default"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`

	// Background is a colour hint for hosts. It has no behavioural effect.
	Background string `mapstructure:"background" yaml:"background"`

	// Locale is a BCP 47 tag selecting the grouping separator.
	Locale string `mapstructure:"locale" yaml:"locale"`
}

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		Min:     DefaultMin,
		Max:     DefaultMax,
		Step:    DefaultStep,
		Default: DefaultValue,
		Locale:  DefaultLocale,
	}
}

var validate = validator.New()

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Locale, err)
		}
		// grouped output must parse back, which rules out non-ASCII digits
		f := NewFormatter(tag)
		if !f.IsNumeric(f.Format(1_000_000)) {
			return fmt.Errorf("%w: locale %q does not format with ASCII digits", ErrInvalidConfig, c.Locale)
		}
	}
	return nil
}

// Clamp limits v to [c.Min, c.Max].
func (c Config) Clamp(v int) int {
	return min(max(c.Min, v), c.Max)
}

// InitialValue is the default value clamped into range.
func (c Config) InitialValue() int {
	return c.Clamp(c.Default)
}

func (c Config) tag() language.Tag {
	if c.Locale == "" {
		return language.English
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
