package sysinfo

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"freshfetch/inject"
)

const (
	defaultTerminalWidth  = 80
	defaultTerminalHeight = 24
)

// Terminal is the size of the terminal freshfetch prints to.
type Terminal struct {
	inject.Static
	Width  int
	Height int
}

// NewTerminal queries the size of stdout. When stdout is not a terminal it
// falls back to $COLUMNS and $LINES, then to 80x24.
func NewTerminal(env LookupEnv) *Terminal {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		if w, h, err := term.GetSize(int(fd)); err == nil && w > 0 && h > 0 {
			return &Terminal{Width: w, Height: h}
		}
	}
	return TerminalFromEnv(env)
}

// TerminalFromEnv builds a Terminal from $COLUMNS and $LINES.
func TerminalFromEnv(env LookupEnv) *Terminal {
	return &Terminal{
		Width:  envInt(env, "COLUMNS", defaultTerminalWidth),
		Height: envInt(env, "LINES", defaultTerminalHeight),
	}
}

func envInt(env LookupEnv, key string, fallback int) int {
	v, ok := env(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// Publish writes the terminal table.
func (t *Terminal) Publish(r *inject.Registry) error {
	return r.PublishRecord("terminal",
		inject.F("width", inject.Int(int64(t.Width))),
		inject.F("height", inject.Int(int64(t.Height))),
	)
}
