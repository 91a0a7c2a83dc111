package notify

import (
	"fmt"

	"go.uber.org/zap"
)

// Handler runs the completion steps according to Config
type Handler struct {
	config Config
	sender Sender
	logger *zap.Logger
}

// NewHandler creates a handler. A nil logger discards diagnostics.
func NewHandler(config Config, sender Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		config: config,
		sender: sender,
		logger: logger,
	}
}

// OnTimerComplete shows n and then plays the alarm. Failures are logged and
// never propagate; a failed notification does not skip the alarm.
func (h *Handler) OnTimerComplete(n Notification) {
	if !h.config.DisableNotifications {
		if err := bestEffort(func() error { return h.sender.SendVisual(n) }); err != nil {
			h.logger.Warn("Failed to send notification", zap.Error(err))
		}
	}

	if !h.config.DisableSound {
		if err := bestEffort(h.sender.SendSound); err != nil {
			h.logger.Warn("Failed to play alarm sound", zap.Error(err))
		}
	}
}

// bestEffort runs step and turns a panic into an error
func bestEffort(step func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return step()
}
