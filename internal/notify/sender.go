package notify

import (
	"errors"

	"github.com/gen2brain/beeep"
)

// AppName is the application name shown by the notification daemon
const AppName = "labt"

// ErrNoAudioOutput is returned by SendSound when no output device was acquired
var ErrNoAudioOutput = errors.New("no audio output device")

// Sender delivers the two completion side effects
type Sender interface {
	// SendVisual shows a desktop notification
	SendVisual(n Notification) error

	// SendSound plays the alarm and blocks until it finishes
	SendSound() error
}

// AlarmPlayer plays the bundled alarm clip synchronously
type AlarmPlayer interface {
	PlayAlarm() error
}

type notifyFunc func(title, message, icon string) error

func beeepNotify(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

// desktopSender implements Sender with beeep and an AlarmPlayer
type desktopSender struct {
	notify notifyFunc
	player AlarmPlayer
}

// NewSender returns a Sender that shows notifications through the OS and
// plays sound on player. A nil player makes SendSound fail with
// ErrNoAudioOutput.
func NewSender(player AlarmPlayer) Sender {
	beeep.AppName = AppName
	return &desktopSender{
		notify: beeepNotify,
		player: player,
	}
}

// SendVisual sends the notification through beeep
func (s *desktopSender) SendVisual(n Notification) error {
	return s.notify(n.Title, n.Message, n.Icon)
}

// SendSound plays the alarm on the acquired device
func (s *desktopSender) SendSound() error {
	if s.player == nil {
		return ErrNoAudioOutput
	}
	return s.player.PlayAlarm()
}
