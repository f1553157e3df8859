// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package form

const (
	ActionNone = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
	// ActionFocus asks the form to make the emitting input the active one.
	ActionFocus
)

type Action int
