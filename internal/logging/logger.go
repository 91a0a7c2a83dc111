// Package logging builds the diagnostic logger used for best-effort failures.
//
// Diagnostics go to stderr as short console lines without timestamps or
// caller information. Quiet mode gets a no-op logger so that every
// diagnostic is suppressed in one place.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction
type Options struct {
	// Quiet discards every log entry
	Quiet bool
	// Debug lowers the level from warn to debug
	Debug bool
}

// New returns a console logger writing to w
func New(w io.Writer, opts Options) *zap.Logger {
	if opts.Quiet || w == nil {
		return zap.NewNop()
	}

	level := zapcore.WarnLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
