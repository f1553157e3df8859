// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of numinput: the Cobra command line
// in ui/cli and the terminal UI in ui/tui.
package ui
