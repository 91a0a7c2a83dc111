// Package countdown implements the one-second tick loop.
//
// The loop owns the remaining-seconds counter. Per tick it polls the
// cancellation flag, reports progress, then sleeps one second. The sleep
// wakes early when the flag is raised, so cancellation is acted on within
// one tick period.
package countdown

import (
	"errors"
	"time"
)

// Tick is the countdown period
const Tick = time.Second

// ErrInterrupted is returned by Run when the cancellation flag was raised
var ErrInterrupted = errors.New("timer interrupted")

// State is the loop's state machine position
type State int

const (
	// Counting means ticks remain
	Counting State = iota
	// Expired means the countdown reached zero
	Expired
	// Interrupted means cancellation was observed before zero
	Interrupted
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case Counting:
		return "counting"
	case Expired:
		return "expired"
	case Interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Canceller is the read side of the cancellation flag
type Canceller interface {
	IsSet() bool
	Done() <-chan struct{}
}

// Reporter receives progress once per tick
type Reporter interface {
	Start(total uint64)
	Update(remaining uint64)
	// Finish reports zero remaining
	Finish()
	// Abort ends the display after cancellation
	Abort()
}

// Timer counts down from a fixed number of seconds
type Timer struct {
	total    uint64
	clock    Clock
	cancel   Canceller
	reporter Reporter
	state    State
}

// New returns a Timer in the Counting state. A nil clock uses RealClock.
func New(total uint64, clock Clock, cancel Canceller, reporter Reporter) *Timer {
	if clock == nil {
		clock = RealClock{}
	}
	return &Timer{
		total:    total,
		clock:    clock,
		cancel:   cancel,
		reporter: reporter,
		state:    Counting,
	}
}

// State returns the current state
func (t *Timer) State() State {
	return t.state
}

// Run blocks until the countdown expires or is interrupted.
// It returns ErrInterrupted in the latter case.
func (t *Timer) Run() error {
	t.reporter.Start(t.total)

	for remaining := t.total; remaining > 0; remaining-- {
		if t.cancel.IsSet() {
			return t.interrupt()
		}
		t.reporter.Update(remaining)
		t.clock.Sleep(Tick, t.cancel.Done())
	}

	// the last sleep may have been cut short
	if t.cancel.IsSet() {
		return t.interrupt()
	}

	t.reporter.Finish()
	t.state = Expired
	return nil
}

func (t *Timer) interrupt() error {
	t.reporter.Abort()
	t.state = Interrupted
	return ErrInterrupted
}
