// Package errors defines error codes and the diagnostic report format shared
// by the lexer, the parser and the command line tool.
package errors

import (
	"fmt"
	"strings"
)

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// FriendlyError is an interface for errors that have a human friendly message
// in addition to a the lower level default error message.
type FriendlyError interface {
	Error() string
	FriendlyErrorMessage() string
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// Formatted converts err into a FormattedError. Errors that do not implement
// FormattableError produce a report holding only the error message.
func Formatted(err error) *FormattedError {
	if fe, ok := err.(FormattableError); ok {
		return fe.ToFormatted()
	}
	return &FormattedError{Kind: "error", Message: err.Error()}
}

// SourceContext returns the main line together with up to before lines that
// precede it, numbered for display. line is 1-based.
func SourceContext(source string, line, before int) []SourceLineEntry {
	if line < 1 {
		return nil
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return nil
	}
	first := max(line-before, 1)
	entries := make([]SourceLineEntry, 0, line-first+1)
	for n := first; n <= line; n++ {
		entries = append(entries, SourceLineEntry{
			Number: n,
			Text:   strings.TrimRight(lines[n-1], "\r"),
			IsMain: n == line,
		})
	}
	return entries
}
