package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Dimensions
	}{
		{"empty", "", Dimensions{Width: 0, Height: 1}},
		{"single line", "hello", Dimensions{Width: 5, Height: 1}},
		{"trailing newline", "ab\n", Dimensions{Width: 2, Height: 2}},
		{"coloured middle line", "ab\n\x1b[31mcde\x1b[0m\nf", Dimensions{Width: 3, Height: 3}},
		{"multi-byte glyphs", "┌──┐\n│ñ │\n└──┘", Dimensions{Width: 4, Height: 3}},
		{"256 colour and bold", "\x1b[1;38;5;208mabc\x1b[0m", Dimensions{Width: 3, Height: 1}},
		{"whitespace kept", "  a  \n", Dimensions{Width: 5, Height: 2}},
		{"upper-case terminator", "\x1b[2Jx", Dimensions{Width: 1, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.in))
		})
	}
}

func TestMeasureHeightMatchesSplit(t *testing.T) {
	for _, in := range []string{"", "\n", "\n\n", "a\nb", "a\x1b[0m\n\x1b[31m\n", "x\r\ny"} {
		assert.Equal(t, len(strings.Split(in, "\n")), Measure(in).Height, "input %q", in)
	}
}

func TestEscapeOnlyTextHasNoWidth(t *testing.T) {
	for _, in := range []string{"\x1b[0m", "\x1b[31m\x1b[1m\x1b[0m", "\x1b[38;5;1m\n\x1b[0m"} {
		assert.Equal(t, 0, Measure(in).Width, "input %q", in)
	}
}

func TestStripIsIdempotent(t *testing.T) {
	for _, in := range []string{"plain", "\x1b[31mred\x1b[0m", "a\x1b[\x1b[0mb", "[31m"} {
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "input %q", in)
	}
}

func TestStripLeavesOtherEscapes(t *testing.T) {
	// Only letter-terminated CSI sequences are removed.
	assert.Equal(t, "\x1b]0;title\x07x", Strip("\x1b]0;title\x07x"))
	assert.Equal(t, "[31mx", Strip("[31mx"))
}

func TestCells(t *testing.T) {
	assert.Equal(t, 5, Cells("\x1b[36mhello\x1b[0m"))
	assert.Equal(t, 4, Cells("日本"))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "Hi   ", Pad("Hi", 5))
	assert.Equal(t, "HelloWorld", Pad("HelloWorld", 5))
	assert.Equal(t, "\x1b[31mHi\x1b[0m   ", Pad("\x1b[31mHi\x1b[0m", 5))
}
