//go:build cgo || darwin || windows

// Package speaker plays the alarm clip on the default audio output device.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/future-gadget-lab/labt/internal/audio"
)

// Player owns the initialized output device
type Player struct {
	mu     sync.Mutex
	closed bool
}

// Open acquires the default output device at the alarm clip's sample rate.
// Opening early hides device start-up latency from the alarm itself.
func Open() (*Player, error) {
	s, format, err := audio.Alarm()
	if err != nil {
		return nil, err
	}
	s.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("opening audio output: %w", err)
	}
	return &Player{}, nil
}

// PlayAlarm plays the alarm clip once and blocks until it has finished
func (p *Player) PlayAlarm() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	s, _, err := audio.Alarm()
	if err != nil {
		return err
	}
	defer s.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))
	<-done

	if err := s.Err(); err != nil {
		return fmt.Errorf("playing alarm clip: %w", err)
	}
	return nil
}

// Close releases the output device
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	speaker.Close()
	return nil
}
