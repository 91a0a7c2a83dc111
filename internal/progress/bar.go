package progress

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// ErrNotTerminal is returned by NewBar when the output cannot host a spinner
var ErrNotTerminal = errors.New("progress: output is not a terminal")

// Bar animates a spinner followed by elapsed time, a proportional bar and the
// time left: "⠹ [00:00:04] [~~~~~~~~>----------------] [00:00:08]".
type Bar struct {
	spinner *spinner.Spinner
	symbols ProgressSymbols
	color   bool
	total   uint64
}

// NewBar builds a spinner bar on f. f must be a terminal.
func NewBar(f *os.File, caps TerminalCapabilities) (*Bar, error) {
	if f == nil || !caps.IsTTY {
		return nil, ErrNotTerminal
	}

	symbols := SelectSymbols(caps)
	s := spinner.New(
		spinner.CharSets[symbols.SpinnerSet],
		100*time.Millisecond,
		spinner.WithWriter(f),
	)
	if caps.SupportsColor {
		if err := s.Color("green"); err != nil {
			return nil, fmt.Errorf("progress: spinner color: %w", err)
		}
	}

	return &Bar{spinner: s, symbols: symbols, color: caps.SupportsColor}, nil
}

// Start begins the spinner animation with an empty bar
func (b *Bar) Start(total uint64) {
	b.total = total
	b.spinner.Suffix = " " + b.line(total)
	b.spinner.Start()
}

// Update moves the bar to total-remaining ticks
func (b *Bar) Update(remaining uint64) {
	suffix := " " + b.line(remaining)
	b.spinner.Lock()
	b.spinner.Suffix = suffix
	b.spinner.Unlock()
}

// Finish stops the spinner and leaves a full bar behind
func (b *Bar) Finish() {
	b.spinner.Lock()
	b.spinner.FinalMSG = fmt.Sprintf("%s %s Timer complete!\n", b.mark(), b.line(0))
	b.spinner.Unlock()
	b.spinner.Stop()
}

// Abort stops the spinner and clears its line
func (b *Bar) Abort() {
	b.spinner.Stop()
}

func (b *Bar) line(remaining uint64) string {
	if remaining > b.total {
		remaining = b.total
	}
	done := b.total - remaining
	return fmt.Sprintf("[%s] [%s] [%s]", FormatClock(done), b.bar(done), FormatClock(remaining))
}

func (b *Bar) bar(done uint64) string {
	filled, head, empty := barCells(done, b.total, BarWidth)
	if !b.color {
		return FormatBar(done, b.total, BarWidth)
	}
	red := color.New(color.FgRed).SprintFunc()
	blue := color.New(color.FgBlue).SprintFunc()
	return red(strings.Repeat(barFilled, filled)+strings.Repeat(barHead, head)) + blue(strings.Repeat(barEmpty, empty))
}

func (b *Bar) mark() string {
	if b.color && b.symbols.Checkmark == "✓" {
		return color.New(color.FgGreen).Sprint(b.symbols.Checkmark)
	}
	return b.symbols.Checkmark
}
