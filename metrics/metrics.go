// Package metrics measures rendered text the way a terminal shows it: colour
// and formatting escape sequences take no room.
package metrics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// csiRegex matches ANSI CSI sequences: ESC [ followed by digits and
// semicolons, terminated by a single letter.
var csiRegex = regexp.MustCompile(`(?i)\x1b\[[0-9;]*[a-z]`)

// Dimensions is the visual size of a block of text.
type Dimensions struct {
	Width  int
	Height int
}

// Strip removes every CSI escape sequence from s. Removing one sequence can
// join the halves of another ("\x1b[\x1b[0mm"), so it repeats until nothing
// matches.
func Strip(s string) string {
	for {
		stripped := csiRegex.ReplaceAllString(s, "")
		if stripped == s {
			return stripped
		}
		s = stripped
	}
}

// Measure computes the visual dimensions of s.
//
// Width is the number of Unicode scalar values of the longest line once
// escape sequences are removed; height is the number of lines produced by
// splitting on "\n", so a trailing newline counts as one empty line and the
// empty string measures {0, 1}.
func Measure(s string) Dimensions {
	lines := strings.Split(Strip(s), "\n")

	d := Dimensions{Height: len(lines)}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > d.Width {
			d.Width = n
		}
	}
	return d
}

// Cells returns the number of terminal cells s occupies, counting wide
// glyphs as two.
func Cells(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Pad right-pads s with spaces until it occupies width cells. Escape
// sequences are ignored when measuring; s is never truncated.
func Pad(s string, width int) string {
	visible := Cells(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}
