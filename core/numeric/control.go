// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

package numeric

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/toeirei/numinput/internal/logging"
)

type State int

const (
	Idle State = iota
	Focused
	Error
	Success
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Focused:
		return "focused"
	case Error:
		return "error"
	case Success:
		return "success"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FocusTarget describes where focus went when the field lost it.
type FocusTarget int

const (
	// TargetOutside is any element outside the control.
	TargetOutside FocusTarget = iota
	// TargetWrapper is an element inside the control's own wrapper, such as
	// the step buttons. Moving there does not end the edit.
	TargetWrapper
)

// Flags is a snapshot of the interaction state. At most one of Error and
// Success is set.
type Flags struct {
	Focused bool
	Hovered bool
	Error   bool
	Success bool
}

type subscriber struct {
	id int
	fn func(int)
}

// Control is one numeric input instance.
type Control struct {
	cfg       Config
	formatter Formatter
	timer     errorTimer

	value     int
	lastValid int
	display   string
	flags     Flags

	onChange       func(int)
	onTouched      func()
	onFocusRequest func()
	subscribers    []subscriber
	nextSubscriber int
}

type Option = func(c *Control)

// WithScheduler installs the scheduler running the error timer. Without
// one the error state stays until the next focus or clearing commit.
func WithScheduler(s Scheduler) Option {
	return func(c *Control) {
		if s != nil {
			c.timer.scheduler = s
		}
	}
}

// WithFocusRequest installs the hook asking the host to move input focus
// into the field.
func WithFocusRequest(fn func()) Option {
	return func(c *Control) {
		if fn != nil {
			c.onFocusRequest = fn
		}
	}
}

// New validates cfg and returns a control initialised to the clamped default.
func New(cfg Config, opts ...Option) (*Control, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Control{
		cfg:            cfg,
		formatter:      NewFormatter(cfg.tag()),
		timer:          errorTimer{scheduler: nopScheduler{}},
		onChange:       func(int) {},
		onTouched:      func() {},
		onFocusRequest: func() {},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Reset()
	// a fresh control starts idle, not in the success state of a commit
	c.flags.Success = false
	return c, nil
}

func (c *Control) Config() Config          { return c.cfg }
func (c *Control) Formatter() Formatter    { return c.formatter }
func (c *Control) Value() int              { return c.value }
func (c *Control) LastValid() int          { return c.lastValid }
func (c *Control) Display() string         { return c.display }
func (c *Control) Flags() Flags            { return c.flags }
func (c *Control) PendingTimer() TimerID   { return c.timer.pending }
func (c *Control) SetHovered(hovered bool) { c.flags.Hovered = hovered }

// State derives the state machine position from the flags.
func (c *Control) State() State {
	switch {
	case c.flags.Error:
		return Error
	case c.flags.Focused:
		return Focused
	case c.flags.Success:
		return Success
	}
	return Idle
}

// RegisterOnChange installs the callback invoked with the value on every
// commit.
func (c *Control) RegisterOnChange(fn func(int)) {
	if fn == nil {
		fn = func(int) {}
	}
	c.onChange = fn
}

// RegisterOnTouched installs the callback invoked once per completed blur.
func (c *Control) RegisterOnTouched(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	c.onTouched = fn
}

// Subscribe adds an observer of committed values. The returned function
// removes it again.
func (c *Control) Subscribe(fn func(int)) (unsubscribe func()) {
	c.nextSubscriber++
	id := c.nextSubscriber
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		c.subscribers = slices.DeleteFunc(slices.Clone(c.subscribers), func(s subscriber) bool {
			return s.id == id
		})
	}
}

// Write pushes an external value into the control. Values that are not an
// integer inside [Min, Max] reset the control to its default silently.
func (c *Control) Write(v any) {
	n, ok := c.coerce(v)
	if ok && n >= c.cfg.Min && n <= c.cfg.Max {
		c.commit(n, true)
		return
	}
	logging.Debugf("numeric: write of %v rejected, resetting to default", v)
	c.Reset()
}

// Reset commits the clamped default value.
func (c *Control) Reset() {
	c.timer.cancel()
	c.flags.Error = false
	c.flags.Success = false
	c.commit(c.cfg.InitialValue(), true)
}

// Focus starts an edit.
func (c *Control) Focus() {
	c.timer.cancel()
	c.flags.Focused = true
	c.flags.Error = false
	c.flags.Success = false
	c.display = c.formatter.Format(c.value)
}

// Input applies one raw edit of the field text.
func (c *Control) Input(raw string) {
	c.display = c.formatter.Regroup(raw)
}

// Blur ends the edit and commits, clamps or reverts the typed text.
func (c *Control) Blur(target FocusTarget) {
	if target == TargetWrapper {
		c.onFocusRequest()
		return
	}

	c.flags.Focused = false
	defer c.onTouched()

	n, err := c.formatter.Parse(c.display)
	if err != nil {
		logging.Debugf("numeric: %q is not numeric, reverting to %d", c.display, c.lastValid)
		c.fail(c.lastValid)
		return
	}
	c.checkRange(n)
}

// ExpireErrorTimer ends the error display started under id. Expiries of
// cancelled or superseded timers return false and change nothing.
func (c *Control) ExpireErrorTimer(id TimerID) bool {
	if !c.timer.take(id) {
		return false
	}
	c.flags.Error = false
	c.flags.Focused = true
	c.display = c.formatter.Format(c.value)
	c.onFocusRequest()
	return true
}

// Release drops the focused flag when the host could not move focus to the
// field after a focus request. Nothing is committed.
func (c *Control) Release() {
	c.flags.Focused = false
}

// Increment adds Step unless the value already sits on Max.
func (c *Control) Increment() {
	if c.value >= c.cfg.Max {
		return
	}
	// value+Step would wrap past math.MaxInt
	if c.cfg.Step > c.cfg.Max-c.value {
		logging.Debugf("numeric: step %d from %d overshoots maximum %d", c.cfg.Step, c.value, c.cfg.Max)
		c.fail(c.cfg.Max)
		return
	}
	c.checkRange(c.value + c.cfg.Step)
}

// Decrement subtracts Step unless the value already sits on Min.
func (c *Control) Decrement() {
	if c.value <= c.cfg.Min {
		return
	}
	c.checkRange(c.value - c.cfg.Step)
}

// ClickWrapper handles a click anywhere on the control. Everything except
// the reset control sends focus to the field.
func (c *Control) ClickWrapper(onReset bool) {
	if !onReset {
		c.onFocusRequest()
	}
}

// Close cancels the pending error timer. The control must not be used
// afterwards.
func (c *Control) Close() {
	c.timer.cancel()
}

func (c *Control) checkRange(n int) {
	switch {
	case n < c.cfg.Min:
		logging.Debugf("numeric: %d below minimum %d", n, c.cfg.Min)
		c.fail(c.cfg.Min)
	case n > c.cfg.Max:
		logging.Debugf("numeric: %d above maximum %d", n, c.cfg.Max)
		c.fail(c.cfg.Max)
	default:
		c.commit(n, true)
	}
}

// fail shows the error state with v committed underneath it.
func (c *Control) fail(v int) {
	c.flags.Error = true
	c.flags.Success = false
	c.commit(v, false)
	c.timer.start(ErrorDisplayDuration)
}

func (c *Control) commit(v int, clearing bool) {
	c.value = c.cfg.Clamp(v)
	c.display = c.formatter.Format(c.value)

	if clearing {
		c.lastValid = c.value
		c.timer.cancel()
		c.flags.Error = false
		c.flags.Success = true
	} else {
		c.flags.Success = false
	}

	c.onChange(c.value)
	// observers may unsubscribe while being notified
	for _, s := range slices.Clone(c.subscribers) {
		s.fn(c.value)
	}
}

// coerce turns numbers and numeric text into an int.
func (c *Control) coerce(v any) (int, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int(f), true
	case reflect.String:
		n, err := c.formatter.Parse(rv.String())
		return n, err == nil
	}

	if s, ok := v.(fmt.Stringer); ok {
		n, err := c.formatter.Parse(s.String())
		return n, err == nil
	}
	return 0, false
}
