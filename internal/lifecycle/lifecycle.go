package lifecycle

import (
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/future-gadget-lab/labt/internal/config"
	"github.com/future-gadget-lab/labt/internal/countdown"
	apperrors "github.com/future-gadget-lab/labt/internal/errors"
	"github.com/future-gadget-lab/labt/internal/interrupt"
	"github.com/future-gadget-lab/labt/internal/logging"
	"github.com/future-gadget-lab/labt/internal/notify"
	"github.com/future-gadget-lab/labt/internal/progress"
)

// Deps are the process resources a run uses. Zero fields get defaults.
type Deps struct {
	// Stdout receives progress output (default os.Stdout)
	Stdout io.Writer
	// Stderr receives diagnostics (default os.Stderr)
	Stderr io.Writer
	// Logger overrides the logger built from Stderr
	Logger *zap.Logger

	// Clock paces the countdown (default countdown.RealClock)
	Clock countdown.Clock
	// Flag is the cancellation flag (default a fresh flag)
	Flag *interrupt.Flag
	// InstallHandler routes OS signals to the flag (default interrupt.Install)
	InstallHandler func(*interrupt.Flag) (stop func(), err error)

	// OpenAlarm acquires the audio output device. Nil means no device.
	OpenAlarm func() (notify.AlarmPlayer, error)
	// NewSender builds the completion sender (default notify.NewSender)
	NewSender func(notify.AlarmPlayer) notify.Sender
}

func (d Deps) withDefaults() Deps {
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Clock == nil {
		d.Clock = countdown.RealClock{}
	}
	if d.Flag == nil {
		d.Flag = interrupt.NewFlag()
	}
	if d.InstallHandler == nil {
		d.InstallHandler = func(f *interrupt.Flag) (func(), error) {
			return interrupt.Install(f)
		}
	}
	if d.NewSender == nil {
		d.NewSender = notify.NewSender
	}
	return d
}

// Run counts down cfg's duration and runs the completion steps.
// It returns the validation error for a bad configuration and
// countdown.ErrInterrupted when a signal stopped the countdown.
// Notification and audio failures are logged, never returned.
func Run(cfg *config.Configuration, deps Deps) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps = deps.withDefaults()
	logger := deps.Logger
	if logger == nil {
		logger = logging.New(deps.Stderr, logging.Options{Quiet: cfg.Quiet, Debug: cfg.Debug})
	}
	defer func() { _ = logger.Sync() }()

	// installed before the device is opened so a signal during a slow
	// device start still exits as interrupted; it stays installed through
	// notification so late signals are absorbed
	stop, err := deps.InstallHandler(deps.Flag)
	if err != nil {
		return apperrors.SignalHandlerUnavailable(err)
	}
	defer stop()

	player := openAlarm(cfg, deps, logger)
	if c, ok := player.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.Debug("closing audio output", zap.Error(err))
			}
		}()
	}

	total := cfg.Total()
	renderer, kind := progress.New(deps.Stdout, progress.Options{
		Quiet:          cfg.Quiet,
		NonInteractive: cfg.NonInteractive,
		Simple:         cfg.Simple,
	})
	logger.Debug("starting countdown",
		zap.Uint64("total_seconds", total),
		zap.String("renderer", string(kind)))

	timer := countdown.New(total, deps.Clock, deps.Flag, renderer)
	if err := timer.Run(); err != nil {
		logger.Debug("countdown stopped", zap.Stringer("state", timer.State()))
		return err
	}

	handler := notify.NewHandler(notify.Config{
		DisableNotifications: cfg.DisableNotifications,
		DisableSound:         cfg.DisableSound,
	}, deps.NewSender(player), logger)
	notifyComplete(handler, completionNotification(cfg))
	return nil
}

// openAlarm acquires the output device before the countdown starts so that
// the alarm plays without device start-up delay. Failure is not fatal.
func openAlarm(cfg *config.Configuration, deps Deps, logger *zap.Logger) notify.AlarmPlayer {
	if cfg.DisableSound || deps.OpenAlarm == nil {
		return nil
	}
	player, err := deps.OpenAlarm()
	if err != nil {
		logger.Warn("Failed to open audio output", zap.Error(apperrors.AudioUnavailable(err)))
		return nil
	}
	return player
}

func completionNotification(cfg *config.Configuration) notify.Notification {
	body := cfg.NotificationBody
	if body == "" {
		body = notify.DefaultMessage(cfg.InputString(), cfg.Total())
	}
	return notify.NewNotification(cfg.NotificationTitle, body)
}
