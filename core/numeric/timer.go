// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

import "time"

// ErrorDisplayDuration is how long the error state stays visible before the
// control returns to editing.
const ErrorDisplayDuration = time.Second

// TimerID identifies one scheduled expiry of the error display. Zero means
// no timer.
type TimerID uint64

// Scheduler runs the one-shot error timer on behalf of a Control. When the
// delay elapses the host must call Control.ExpireErrorTimer with the same id
// on its event loop. Cancel is advisory: the control ignores expiries of ids
// it no longer waits for.
type Scheduler interface {
	Schedule(id TimerID, after time.Duration)
	Cancel(id TimerID)
}

type nopScheduler struct{}

func (nopScheduler) Schedule(TimerID, time.Duration) {}
func (nopScheduler) Cancel(TimerID)                  {}

// errorTimer tracks the single pending expiry owned by a control.
type errorTimer struct {
	scheduler Scheduler
	seq       TimerID
	pending   TimerID
}

// start cancels any pending expiry before scheduling a new one.
func (t *errorTimer) start(after time.Duration) TimerID {
	t.cancel()
	t.seq++
	t.pending = t.seq
	t.scheduler.Schedule(t.pending, after)
	return t.pending
}

func (t *errorTimer) cancel() {
	if t.pending == 0 {
		return
	}
	t.scheduler.Cancel(t.pending)
	t.pending = 0
}

// take consumes the pending expiry if id matches it.
func (t *errorTimer) take(id TimerID) bool {
	if id == 0 || id != t.pending {
		return false
	}
	t.pending = 0
	return true
}
