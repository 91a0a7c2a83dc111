package testutil

import "sync"

// MockPlayer is an AlarmPlayer that counts plays and closes
type MockPlayer struct {
	mu        sync.Mutex
	PlayError error
	Plays     int
	Closed    bool
}

// PlayAlarm records the call and returns PlayError
func (p *MockPlayer) PlayAlarm() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Plays++
	return p.PlayError
}

// Close marks the player closed
func (p *MockPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Closed = true
	return nil
}

// PlayCount returns the number of PlayAlarm calls
func (p *MockPlayer) PlayCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Plays
}

// IsClosed reports whether Close was called
func (p *MockPlayer) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Closed
}
