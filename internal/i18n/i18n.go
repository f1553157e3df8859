// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides translated UI labels. It uses the go-i18n library to
// load the embedded YAML locale files and golang.org/x/text/language to
// match the requested language against them.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   language.Tag
)

// Init loads all embedded locale files and activates lang. Unknown
// languages fall back to English.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			panic(fmt.Sprintf("i18n: broken embedded locale %s: %v", f.Name(), err))
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	current = language.Make(base.String())

	localizer = i18n.NewLocalizer(bundle, current.String())
}

// T translates messageID. A single map argument is used as template data,
// any other arguments are applied with fmt.Sprintf. Unknown ids are
// returned unchanged.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language as a BCP 47 string.
func GetLang() string {
	return Tag().String()
}

// Tag returns the active language tag.
func Tag() language.Tag {
	if localizer == nil {
		Init("en")
	}
	return current
}

// Available returns the languages with an embedded locale file, sorted.
func Available() []string {
	if bundle == nil {
		Init("en")
	}
	var langs []string
	for _, tag := range bundle.LanguageTags() {
		langs = append(langs, tag.String())
	}
	sort.Strings(langs)
	return langs
}

// IsAvailable reports whether lang has its own locale file.
func IsAvailable(lang string) bool {
	for _, l := range Available() {
		if strings.EqualFold(l, lang) {
			return true
		}
	}
	return false
}
