package ui

import (
	"fmt"
	"io"
)

// OK prints msg to w as a success line in the current theme.
func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymOK+" "+msg))
}

// Fail prints msg to w as an error line in the current theme.
func Fail(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Error.Bold(true).Render(t.SymFail+" "+msg))
}
