package errors

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Describe renders the categorised body of an error report: a fixed prefix
// naming the guilty script, command or path, followed by the underlying
// diagnostic.
func Describe(err error) string {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return fmt.Sprintf("An unexpected error occurred. Details:\n%v", err)
	}

	details := fe.Message
	if fe.Wrapped != nil {
		details = fe.Wrapped.Error()
	}

	switch fe.Code {
	case ErrScript:
		return fmt.Sprintf("A Lua error occurred in %q. Details:\n%s", fe.Subject, details)
	case ErrScriptOutput:
		return fmt.Sprintf("The Lua script %q did not produce any output. Details:\n%s", fe.Subject, details)
	case ErrRead:
		return fmt.Sprintf("An I/O error occurred while trying to read from %q. Details:\n%s", fe.Subject, details)
	case ErrCommand:
		return fmt.Sprintf("An error occurred while executing %q. Details:\n%s", fe.Subject, details)
	case ErrEnv:
		return fmt.Sprintf("Failed to get $%s. Details:\n%s", fe.Subject, details)
	case ErrPublish:
		return fmt.Sprintf("Failed to publish %q into the Lua context. Details:\n%s", fe.Subject, details)
	case ErrProbe:
		return fmt.Sprintf("Failed to gather %s information. Details:\n%s", fe.Subject, details)
	case ErrConfig:
		return fmt.Sprintf("Failed to load configuration. Details:\n%s", fe.Error())
	default:
		return fmt.Sprintf("An internal error occurred. Details:\n%s", fe.Error())
	}
}

// Report prints a red "Error." header followed by the categorised message.
// The header is coloured even when w is not a terminal.
func Report(w io.Writer, err error) {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI)
	header := renderer.NewStyle().Foreground(lipgloss.Color("1")).Render("Error.")
	fmt.Fprintf(w, "%s\n%s\n", header, Describe(err))
}
