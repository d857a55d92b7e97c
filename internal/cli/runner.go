// Package cli wires the command tree: the interactive screen at the root and
// a one-shot generate subcommand.
package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/passgen/internal/clip"
	"github.com/idilsaglam/passgen/internal/form"
	"github.com/idilsaglam/passgen/internal/tui"
	"github.com/idilsaglam/passgen/internal/ui"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ScreenRunner runs the interactive screen until the user quits.
type ScreenRunner func(m tui.Model, opts ...tea.ProgramOption) (tui.Model, error)

// App carries the process edges so tests can swap them.
type App struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Clipboard clip.Writer
	RunScreen ScreenRunner
}

// DefaultApp talks to the real terminal and clipboard.
func DefaultApp() App {
	return App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Clipboard: clip.System{},
		RunScreen: tui.Run,
	}
}

// usageError marks bad flags or arguments.
type usageError struct{ error }

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// Run executes the command line and returns an exit code (0 ok, 1 error, 2 usage).
func (a App) Run(args []string) int {
	root := a.newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return ExitOK
	}

	if msg := form.MessageOf(err); msg != "" {
		ui.Fail(a.Stderr, msg)
		return ExitUsage
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		ui.Fail(a.Stderr, uerr.Error())
		fmt.Fprintln(a.Stderr, ui.Current().Muted.Render("Hint: run `passgen --help` for usage"))
		return ExitUsage
	}
	ui.Fail(a.Stderr, err.Error())
	return ExitError
}
