// Package progress renders the countdown on the terminal.
//
// Exactly one Renderer is active per run. Select picks it from the flags and
// the detected terminal: quiet suppresses everything, non-interactive forces
// plain lines, and a terminal gets the spinner bar (or the redrawing line
// with --simple). Anything that is not a terminal falls back to plain lines.
package progress

import (
	"io"
	"os"
)

// Renderer receives one update per tick from the countdown loop
type Renderer interface {
	// Start is called once before the first tick
	Start(total uint64)
	// Update shows the seconds left before the next sleep
	Update(remaining uint64)
	// Finish shows the expired state
	Finish()
	// Abort ends the display after an interrupt
	Abort()
}

// Kind identifies a renderer implementation
type Kind string

const (
	// KindQuiet prints nothing
	KindQuiet Kind = "quiet"
	// KindLines prints one line per tick
	KindLines Kind = "lines"
	// KindRedraw overwrites a single line
	KindRedraw Kind = "redraw"
	// KindBar shows a spinner and a proportional bar
	KindBar Kind = "bar"
)

// Options are the flags that influence renderer choice
type Options struct {
	Quiet          bool
	NonInteractive bool
	Simple         bool
}

// Select decides which renderer to use. Precedence: quiet > non-interactive >
// terminal display. Non-terminals get plain lines.
func Select(opts Options, caps TerminalCapabilities) Kind {
	switch {
	case opts.Quiet:
		return KindQuiet
	case opts.NonInteractive:
		return KindLines
	case !caps.IsTTY:
		return KindLines
	case opts.Simple:
		return KindRedraw
	default:
		return KindBar
	}
}

// New builds the renderer chosen by Select for out. If the bar cannot be
// constructed it falls back to plain lines.
func New(out io.Writer, opts Options) (Renderer, Kind) {
	var caps TerminalCapabilities
	f, isFile := out.(*os.File)
	if isFile {
		caps = DetectTerminalCapabilities(f)
	}

	kind := Select(opts, caps)
	switch kind {
	case KindQuiet:
		return Quiet{}, kind
	case KindRedraw:
		return NewRedraw(out), kind
	case KindBar:
		bar, err := NewBar(f, caps)
		if err != nil {
			return NewLines(out), KindLines
		}
		return bar, kind
	default:
		return NewLines(out), KindLines
	}
}
