// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package numeric implements the headless state machine of a bounded numeric
// input control. The control accepts typed or stepped entry, formats its
// value with thousands grouping, keeps the committed value inside
// [Min, Max] and reverts to the last valid value when an edit cannot be
// parsed.
//
// The package holds no UI code. Hosts deliver focus, input, blur and step
// events and supply a Scheduler for the transient error display; a terminal
// host lives in ui/tui/models/helpers/form/input.
//
// A Control is not safe for concurrent use. All calls, including
// ExpireErrorTimer, must happen on the host's event loop.
package numeric
