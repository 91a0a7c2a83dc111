package progress

import (
	"fmt"
	"io"
)

// Quiet discards all progress
type Quiet struct{}

func (Quiet) Start(uint64)  {}
func (Quiet) Update(uint64) {}
func (Quiet) Finish()       {}
func (Quiet) Abort()        {}

// Lines prints "Time remaining: HH:MM:SS" on a fresh line every tick.
// Suitable for pipes and log files.
type Lines struct {
	out io.Writer
}

// NewLines returns a Lines renderer writing to out
func NewLines(out io.Writer) *Lines {
	return &Lines{out: out}
}

func (l *Lines) Start(uint64) {}

func (l *Lines) Update(remaining uint64) {
	fmt.Fprintln(l.out, remainingLine(remaining))
}

func (l *Lines) Finish() {
	fmt.Fprintln(l.out, remainingLine(0))
}

func (l *Lines) Abort() {}

// Redraw rewrites a single terminal line with a carriage return every tick
type Redraw struct {
	out io.Writer
}

// NewRedraw returns a Redraw renderer writing to out
func NewRedraw(out io.Writer) *Redraw {
	return &Redraw{out: out}
}

func (r *Redraw) Start(uint64) {}

func (r *Redraw) Update(remaining uint64) {
	fmt.Fprintf(r.out, "\r%s ", remainingLine(remaining))
}

func (r *Redraw) Finish() {
	fmt.Fprintf(r.out, "\r%s\n", remainingLine(0))
}

// Abort moves off the redrawn line
func (r *Redraw) Abort() {
	fmt.Fprintln(r.out)
}
