package notify

import "fmt"

// DefaultIcon is the freedesktop icon name shown with the notification
const DefaultIcon = "alarm-symbolic"

// Config selects which completion steps run
type Config struct {
	// DisableNotifications skips the desktop notification
	DisableNotifications bool
	// DisableSound skips the alarm sound
	DisableSound bool
}

// Notification represents a single desktop notification
type Notification struct {
	// Title is the notification summary (e.g., "Timer Finished!")
	Title string

	// Message is the notification body text
	Message string

	// Icon is an icon name or path understood by the notification daemon
	Icon string
}

// NewNotification creates a Notification with the default icon
func NewNotification(title, message string) Notification {
	return Notification{
		Title:   title,
		Message: message,
		Icon:    DefaultIcon,
	}
}

// DefaultMessage is the body used when the user did not supply one.
// input is the duration as typed, e.g. "0h 0m 3s".
func DefaultMessage(input string, totalSeconds uint64) string {
	return fmt.Sprintf("The timer for %s (%d seconds) is complete.", input, totalSeconds)
}
