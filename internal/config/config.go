// Package config holds the timer configuration and the duration resolver.
//
// Values are layered with koanf: built-in defaults, then LABT_-prefixed
// environment variables. The cli package applies explicitly set flags on top
// and calls Validate before the countdown starts.
package config

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/future-gadget-lab/labt/internal/errors"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "LABT_"

const (
	tagNonzeroDuration = "nonzero_duration"
	tagDurationRange   = "duration_range"
)

// Configuration represents one timer run
type Configuration struct {
	Hours                uint64 `koanf:"hours"`
	Minutes              uint64 `koanf:"minutes"`
	Seconds              uint64 `koanf:"seconds"`
	NotificationTitle    string `koanf:"notification_title"`
	NotificationBody     string `koanf:"notification_body"` // empty means generated
	DisableNotifications bool   `koanf:"disable_notifications"`
	DisableSound         bool   `koanf:"disable_sound"`
	Quiet                bool   `koanf:"quiet"`
	NonInteractive       bool   `koanf:"non_interactive"`
	Simple               bool   `koanf:"simple"` // redrawing line instead of spinner + bar
	Debug                bool   `koanf:"debug"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(durationRule, Configuration{})
	return v
}

// durationRule rejects a zero total and totals that do not fit in uint64
func durationRule(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Configuration)
	if !ok {
		return
	}
	total, ok := TotalSeconds(cfg.Hours, cfg.Minutes, cfg.Seconds)
	switch {
	case !ok:
		sl.ReportError(cfg.Hours, "Hours", "hours", tagDurationRange, "")
	case total == 0:
		sl.ReportError(cfg.Seconds, "Seconds", "seconds", tagNonzeroDuration, "")
	}
}

// Load loads configuration from defaults and environment variables.
// Priority: Environment variables > Defaults
func Load() (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: LABT_DISABLE_SOUND -> disable_sound
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate checks the configuration before the countdown starts.
// A zero duration yields the ZeroDuration CLIError.
func (c *Configuration) Validate() error {
	err := validate.Struct(*c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.InvalidConfig(err)
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case tagNonzeroDuration:
			return apperrors.ZeroDuration()
		case tagDurationRange:
			return apperrors.NewConfigError(
				"Total duration does not fit in a 64-bit second counter.",
				"Use a smaller value for -H/--hours, -M/--minutes or -S/--seconds.",
			)
		}
	}
	return apperrors.InvalidConfig(verrs)
}

// TotalSeconds returns hours*3600 + minutes*60 + seconds.
// ok is false if the sum overflows.
func TotalSeconds(hours, minutes, seconds uint64) (total uint64, ok bool) {
	hi, h := bits.Mul64(hours, 3600)
	if hi != 0 {
		return 0, false
	}
	hi, m := bits.Mul64(minutes, 60)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(h, m, 0)
	if carry != 0 {
		return 0, false
	}
	sum, carry = bits.Add64(sum, seconds, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// Total returns the configured duration in seconds. Call Validate first.
func (c *Configuration) Total() uint64 {
	total, _ := TotalSeconds(c.Hours, c.Minutes, c.Seconds)
	return total
}

// InputString echoes the duration as the user gave it, e.g. "0h 1m 30s"
func (c *Configuration) InputString() string {
	return fmt.Sprintf("%dh %dm %ds", c.Hours, c.Minutes, c.Seconds)
}
