package countdown

import "time"

// Clock blocks for one tick
type Clock interface {
	// Sleep blocks for d of wall-clock time or until cancel is closed
	Sleep(d time.Duration, cancel <-chan struct{})
}

// RealClock sleeps on a runtime timer
type RealClock struct{}

// Sleep implements Clock
func (RealClock) Sleep(d time.Duration, cancel <-chan struct{}) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-cancel:
	}
}
