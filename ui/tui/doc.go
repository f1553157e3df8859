// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the terminal UI. Models live below models/: reusable
// components, form helpers with their inputs, and the views composed by
// the root model.
package tui
