// Package lifecycle runs one timer from a validated configuration to the
// completion side effects.
//
// Run owns the ordering: validate, install the signal handler, pre-open the
// audio device, count down, then notify. Everything that touches the
// outside world comes in through Deps so tests can run a whole timer
// without a terminal, a clock, a sound card or a notification daemon.
package lifecycle

import "github.com/future-gadget-lab/labt/internal/notify"

// CompletionHandler receives the expired timer's notification.
// This interface is satisfied by *notify.Handler.
//
// Implementations must be best-effort: a failure inside the handler never
// changes the outcome of the run.
type CompletionHandler interface {
	// OnTimerComplete is called once, only after natural expiry.
	OnTimerComplete(n notify.Notification)
}

// notifyComplete safely calls OnTimerComplete with panic recovery.
func notifyComplete(handler CompletionHandler, n notify.Notification) {
	if handler == nil {
		return
	}
	defer func() { _ = recover() }()
	handler.OnTimerComplete(n)
}
