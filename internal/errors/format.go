package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	headerColor = color.New(color.FgRed, color.Bold)
	labelColor  = color.New(color.FgYellow)
)

// FormatError renders err with a colored category header.
// fatih/color still drops the codes when stdout is not a terminal.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, headerColor.Sprint, labelColor.Sprint)
}

// FormatErrorPlain renders err without ANSI escape codes
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return render(err, fmt.Sprint, fmt.Sprint)
}

func render(err *CLIError, header, label func(...interface{}) string) string {
	var b strings.Builder
	b.WriteString(header(err.Category.String() + ":"))
	b.WriteString(" ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Usage != "" {
		b.WriteString("\n")
		b.WriteString(label("Usage:"))
		b.WriteString(" ")
		b.WriteString(err.Usage)
		b.WriteString("\n")
	}

	if len(err.Remediation) > 0 {
		b.WriteString("\n")
		b.WriteString(label("To fix this:"))
		b.WriteString("\n")
		for _, step := range err.Remediation {
			b.WriteString("  - ")
			b.WriteString(step)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FprintError writes err to w, colored only when w is a terminal.
// A nil error writes nothing.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	if isColorTerminal(w) {
		fmt.Fprint(w, FormatError(err))
		return
	}
	fmt.Fprint(w, FormatErrorPlain(err))
}

func isColorTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
