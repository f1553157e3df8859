// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNotNumeric is returned by Formatter.Parse for text that is not a plain
// non-negative integer literal.
var ErrNotNumeric = errors.New("not a non-negative integer")

var digits = regexp.MustCompile(`^[0-9]+$`)

// Formatter groups integers the way the configured locale does and strips
// that grouping again when parsing.
type Formatter struct {
	printer   *message.Printer
	separator string
}

func NewFormatter(tag language.Tag) Formatter {
	p := message.NewPrinter(tag)

	// take the first non-digit of a grouped million as the separator
	separator := ","
	for _, r := range p.Sprintf("%d", 1_000_000) {
		if !unicode.IsDigit(r) {
			separator = string(r)
			break
		}
	}

	return Formatter{printer: p, separator: separator}
}

// Separator returns the grouping character.
func (f Formatter) Separator() string {
	return f.separator
}

// Format renders n grouped with thousands separators and no decimals.
func (f Formatter) Format(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Strip removes all grouping separators from s.
func (f Formatter) Strip(s string) string {
	return strings.ReplaceAll(s, f.separator, "")
}

// IsNumeric reports whether s, without separators, is one or more decimal
// digits and nothing else.
func (f Formatter) IsNumeric(s string) bool {
	return digits.MatchString(f.Strip(s))
}

// Parse converts grouped or plain digit text to an int. Literals too large
// for an int saturate at math.MaxInt so they land on the upper range
// check of the caller.
func (f Formatter) Parse(s string) (int, error) {
	raw := f.Strip(s)
	if !digits.MatchString(raw) {
		return 0, ErrNotNumeric
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Regroup is the keystroke rule: digit text is reformatted with grouping,
// anything else is returned untouched.
func (f Formatter) Regroup(raw string) string {
	stripped := f.Strip(raw)
	if !digits.MatchString(stripped) {
		return raw
	}
	n, err := strconv.Atoi(stripped)
	if err != nil {
		return raw
	}
	return f.Format(n)
}
