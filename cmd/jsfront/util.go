package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
)

var red = color.New(color.FgRed).SprintFunc()

// exitCode is returned by commands that already reported their failure and
// only need the process to exit with a particular status.
type exitCode int

func (c exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(c))
}

func asExitCode(err error, target *exitCode) bool {
	return errors.As(err, target)
}

// isTerminal reports whether w writes to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorEnabled reports whether output written to w should be colored.
func (a *app) colorEnabled(w io.Writer) bool {
	if a.config.GetBool("no-color") || color.NoColor {
		return false
	}
	return isTerminal(w)
}

func (a *app) getOutputJSON(v any, w io.Writer) ([]byte, error) {
	if !a.colorEnabled(w) {
		return json.MarshalIndent(v, "", "  ")
	}
	return prettyjson.Marshal(v)
}
