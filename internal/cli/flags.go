package cli

import (
	"github.com/spf13/cobra"

	"github.com/future-gadget-lab/labt/internal/config"
)

// Flag names for the timer flags
const (
	HoursFlagName                = "hours"
	MinutesFlagName              = "minutes"
	SecondsFlagName              = "seconds"
	NotificationTitleFlagName    = "notification-title"
	NotificationBodyFlagName     = "notification-body"
	DisableNotificationsFlagName = "disable-notifications"
	DisableSoundFlagName         = "disable-sound"
	QuietFlagName                = "quiet"
	NonInteractiveFlagName       = "non-interactive"
	SimpleFlagName               = "simple"
)

// AddTimerFlags adds the duration, notification and output flags to cmd
func AddTimerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Uint64P(HoursFlagName, "H", 0, "Hours")
	f.Uint64P(MinutesFlagName, "M", 0, "Minutes")
	f.Uint64P(SecondsFlagName, "S", 0, "Seconds")
	f.StringP(NotificationTitleFlagName, "t", config.DefaultNotificationTitle, "Notification title")
	f.StringP(NotificationBodyFlagName, "b", "", "Notification body (default: generated from the duration)")
	f.BoolP(DisableNotificationsFlagName, "n", false, "Do not show a desktop notification")
	f.BoolP(DisableSoundFlagName, "s", false, "Do not play the alarm sound")
	f.BoolP(QuietFlagName, "q", false, "Suppress all output")
	f.BoolP(NonInteractiveFlagName, "N", false, "Print one plain line per second (for scripts and logs)")
	f.Bool(SimpleFlagName, false, "Redraw a single line instead of the progress bar")
}

// ApplyTimerFlags copies every flag the user set onto cfg.
// Priority: flag > LABT_ environment variable > default.
func ApplyTimerFlags(cmd *cobra.Command, cfg *config.Configuration) {
	f := cmd.Flags()

	uints := map[string]*uint64{
		HoursFlagName:   &cfg.Hours,
		MinutesFlagName: &cfg.Minutes,
		SecondsFlagName: &cfg.Seconds,
	}
	for name, dst := range uints {
		if f.Changed(name) {
			*dst, _ = f.GetUint64(name)
		}
	}

	strs := map[string]*string{
		NotificationTitleFlagName: &cfg.NotificationTitle,
		NotificationBodyFlagName:  &cfg.NotificationBody,
	}
	for name, dst := range strs {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}

	bools := map[string]*bool{
		DisableNotificationsFlagName: &cfg.DisableNotifications,
		DisableSoundFlagName:         &cfg.DisableSound,
		QuietFlagName:                &cfg.Quiet,
		NonInteractiveFlagName:       &cfg.NonInteractive,
		SimpleFlagName:               &cfg.Simple,
	}
	for name, dst := range bools {
		if f.Changed(name) {
			*dst, _ = f.GetBool(name)
		}
	}
}
