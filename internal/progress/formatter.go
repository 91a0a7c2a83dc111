package progress

import (
	"fmt"
	"strings"
)

// BarWidth is the number of cells in the progress bar
const BarWidth = 25

const (
	barFilled = "~"
	barHead   = ">"
	barEmpty  = "-"
)

// FormatClock formats seconds as HH:MM:SS. Hours are not capped at 99.
func FormatClock(totalSeconds uint64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// remainingLine is the text shown by the line-based renderers
func remainingLine(remaining uint64) string {
	return "Time remaining: " + FormatClock(remaining)
}

// barCells splits width cells into filled, head and empty counts for done/total
func barCells(done, total uint64, width int) (filled, head, empty int) {
	if total == 0 || done >= total {
		return width, 0, 0
	}
	filled = int(done * uint64(width) / total)
	return filled, 1, width - filled - 1
}

// FormatBar renders the uncolored bar body, e.g. "~~~~~>-------------------"
func FormatBar(done, total uint64, width int) string {
	filled, head, empty := barCells(done, total, width)
	return strings.Repeat(barFilled, filled) + strings.Repeat(barHead, head) + strings.Repeat(barEmpty, empty)
}
