// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the numinput command line using Cobra. It wires
// configuration, i18n and logging, then hands the resolved fields to the TUI.
package cli
