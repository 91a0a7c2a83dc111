// Package testutil provides test doubles shared by labt package tests.
package testutil

import (
	"errors"
	"sync"

	"github.com/future-gadget-lab/labt/internal/notify"
)

// Common test errors
var (
	ErrMockVisual = errors.New("mock visual notification error")
	ErrMockSound  = errors.New("mock sound notification error")
)

// MockSender records all Sender calls and returns configured errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	VisualError error
	SoundError  error
	VisualFunc  func(notify.Notification) error
	SoundFunc   func() error

	// Call tracking
	VisualCalls      []notify.Notification
	SoundCallCount   int
	LastNotification notify.Notification
	order            []string
}

// NewMockSender creates a mock sender whose calls all succeed
func NewMockSender() *MockSender {
	return &MockSender{VisualCalls: make([]notify.Notification, 0)}
}

// WithVisualError configures the mock to return an error on SendVisual
func (m *MockSender) WithVisualError(err error) *MockSender {
	m.VisualError = err
	return m
}

// WithSoundError configures the mock to return an error on SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// WithVisualFunc configures a custom visual notification function
func (m *MockSender) WithVisualFunc(fn func(notify.Notification) error) *MockSender {
	m.VisualFunc = fn
	return m
}

// WithSoundFunc configures a custom sound function
func (m *MockSender) WithSoundFunc(fn func() error) *MockSender {
	m.SoundFunc = fn
	return m
}

// SendVisual records the call and returns the configured error
func (m *MockSender) SendVisual(n notify.Notification) error {
	m.mu.Lock()
	m.VisualCalls = append(m.VisualCalls, n)
	m.LastNotification = n
	m.order = append(m.order, "visual")
	fn, err := m.VisualFunc, m.VisualError
	m.mu.Unlock()

	if fn != nil {
		return fn(n)
	}
	return err
}

// SendSound records the call and returns the configured error
func (m *MockSender) SendSound() error {
	m.mu.Lock()
	m.SoundCallCount++
	m.order = append(m.order, "sound")
	fn, err := m.SoundFunc, m.SoundError
	m.mu.Unlock()

	if fn != nil {
		return fn()
	}
	return err
}

// VisualCallCount returns how many notifications were sent
func (m *MockSender) VisualCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.VisualCalls)
}

// SoundCalls returns how many times the alarm was requested
func (m *MockSender) SoundCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SoundCallCount
}

// Order returns the sequence of steps, e.g. ["visual", "sound"]
func (m *MockSender) Order() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.order...)
}
