// Package interrupt provides the process-wide cancellation flag and the
// OS signal handler that raises it.
//
// The handler goroutine does nothing but Set the flag. All decisions stay in
// the countdown loop, which polls IsSet once per tick.
package interrupt

import (
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
)

// Signals are the signals that request cancellation by default
var Signals = []os.Signal{os.Interrupt, syscall.SIGTERM}

// ErrNilFlag is returned by Install when there is no flag to raise
var ErrNilFlag = errors.New("interrupt: nil flag")

// Flag is a one-shot cancellation flag. It only moves from false to true.
type Flag struct {
	set  atomic.Bool
	done chan struct{}
}

// NewFlag returns a lowered flag
func NewFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

// Set raises the flag. Calls after the first are no-ops.
func (f *Flag) Set() {
	if f.set.CompareAndSwap(false, true) {
		close(f.done)
	}
}

// IsSet reports whether the flag has been raised
func (f *Flag) IsSet() bool {
	return f.set.Load()
}

// Done is closed when the flag is raised
func (f *Flag) Done() <-chan struct{} {
	return f.done
}

// Install routes the given signals (Signals if none) to f.Set and returns a
// function that unregisters the handler.
func Install(f *Flag, sigs ...os.Signal) (stop func(), err error) {
	if f == nil {
		return nil, ErrNilFlag
	}
	if len(sigs) == 0 {
		sigs = Signals
	}

	ch := make(chan os.Signal, 1)
	quit := make(chan struct{})
	signal.Notify(ch, sigs...)

	go func() {
		for {
			select {
			case <-ch:
				f.Set()
			case <-quit:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(quit)
	}, nil
}
