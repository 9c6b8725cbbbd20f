package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/iburimskiy/portfolio-fx/internal/effects"
)

// glyphWidth and lineHeight describe ebitenutil's debug font.
const (
	glyphWidth = 6
	lineHeight = 16
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// wrap breaks text into lines that fit width pixels of the debug font.
// Words longer than a line are split.
func wrap(text string, width float64) []string {
	cols := max(1, int(width)/glyphWidth)
	var lines []string
	for _, para := range strings.Split(text, "\n\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for len([]rune(word)) > cols {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				r := []rune(word)
				lines = append(lines, string(r[:cols]))
				word = string(r[cols:])
			}
			switch {
			case line == "":
				line = word
			case len([]rune(line))+1+len([]rune(word)) <= cols:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// shift moves r down by dy.
func shift(r effects.Rect, dy float64) effects.Rect {
	r.Y += dy
	return r
}
