package planner

import (
	"fmt"
	"time"
)

// TimerMode selects the focus-timer preset.
type TimerMode int

const (
	ModeWork TimerMode = iota
	ModeBreak
)

func (m TimerMode) String() string {
	if m == ModeBreak {
		return "break"
	}
	return "work"
}

// Preset durations for the focus timer.
const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

// Notifier receives the single end-of-countdown notification.
type Notifier interface {
	Notify(mode TimerMode)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Notify(TimerMode) {}

// Timer is a single countdown in seconds, independent of any provider state.
// Starting always resets from the mode's preset and replaces a running
// countdown; only one timer instance exists at a time.
type Timer struct {
	mode      TimerMode
	remaining int
	running   bool
	notifier  Notifier
}

func NewTimer(notifier Notifier) *Timer {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Timer{notifier: notifier}
}

// Start resets the countdown from the preset for mode, overwriting any
// running timer.
func (t *Timer) Start(mode TimerMode) {
	t.mode = mode
	switch mode {
	case ModeBreak:
		t.remaining = int(BreakDuration.Seconds())
	default:
		t.remaining = int(WorkDuration.Seconds())
	}
	t.running = true
}

// Stop halts the countdown without firing a notification.
func (t *Timer) Stop() {
	t.running = false
}

// Tick decrements the countdown by one second. Exactly when it reaches zero
// the timer stops and fires one notification; later ticks are no-ops.
func (t *Timer) Tick() (done bool) {
	if !t.running {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.running = false
	t.notifier.Notify(t.mode)
	return true
}

func (t *Timer) Mode() TimerMode { return t.mode }
func (t *Timer) Running() bool   { return t.running }
func (t *Timer) Remaining() int  { return t.remaining }

// RemainingClock formats the countdown as mm:ss for display.
func (t *Timer) RemainingClock() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}
