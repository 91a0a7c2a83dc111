// Package notify runs the completion side effects of an expired timer.
//
// A Handler executes two ordered best-effort steps: a desktop notification
// and the alarm sound. Each step catches its own failure, logs it, and lets
// the next step run. Nothing in this package changes the exit status.
//
// # Platform Support
//
// Desktop notifications go through github.com/gen2brain/beeep (D-Bus on
// Linux and BSD, the notification center on macOS, toasts on Windows). The
// alarm is played by an AlarmPlayer, normally the speaker package.
//
// # Usage
//
//	sender := notify.NewSender(player)
//	handler := notify.NewHandler(notify.Config{}, sender, logger)
//	handler.OnTimerComplete(notify.NewNotification(title, body))
package notify
