//go:build !cgo && !darwin && !windows

package speaker

// Player is a stand-in on builds without an audio backend. Open never
// returns one, so its methods only guard against misuse.
type Player struct{}

// Open always fails without cgo
func Open() (*Player, error) {
	return nil, ErrUnsupported
}

// PlayAlarm always fails without cgo
func (p *Player) PlayAlarm() error {
	return ErrUnsupported
}

// Close is a no-op
func (p *Player) Close() error {
	return nil
}
