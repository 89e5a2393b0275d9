package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Formatter formats errors with colors and professional styling.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

// Colors used for error formatting. They are forced on because the Formatter
// decides on its own whether to apply them.
var (
	colorError     = forced(color.FgRed)
	colorErrorBold = forced(color.FgHiRed, color.Bold)
	colorCode      = forced(color.FgHiBlack)
	colorLocation  = forced(color.FgCyan)
	colorGutter    = forced(color.FgHiBlack)
	colorSource    = forced(color.FgWhite)
	colorCaret     = forced(color.FgHiRed, color.Bold)
	colorHint      = forced(color.FgHiYellow)
	colorNote      = forced(color.FgHiBlue)
)

func forced(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// FormattedError represents an error ready for display.
type FormattedError struct {
	Code        ErrorCode
	Kind        string // "error", "syntax error", "parse error"
	Message     string
	Filename    string
	Line        int
	Column      int
	EndColumn   int               // For multi-character underlines
	SourceLines []SourceLineEntry // Multiple lines for context
	Hint        string            // "Did you mean?" suggestion
	Note        string            // Additional context
}

// SourceLineEntry represents a line of source code with its number.
type SourceLineEntry struct {
	Number int
	Text   string
	IsMain bool // True if this is the line with the error
}

// Location returns the location of the error.
func (e *FormattedError) Location() SourceLocation {
	loc := SourceLocation{Filename: e.Filename, Line: e.Line, Column: e.Column}
	for _, line := range e.SourceLines {
		if line.IsMain {
			loc.Source = line.Text
		}
	}
	return loc
}

// Format formats the error as a string using a consistent Rust-like style.
func (f *Formatter) Format(err *FormattedError) string {
	return f.FormatWithPrefix(err, "")
}

// FormatWithPrefix formats the error with an optional prefix like "[1/5]".
func (f *Formatter) FormatWithPrefix(err *FormattedError, prefix string) string {
	var b strings.Builder

	gutter := 2
	for _, line := range err.SourceLines {
		gutter = max(gutter, len(strconv.Itoa(line.Number)))
	}
	gutter = max(gutter, len(strconv.Itoa(err.Line)))

	f.writeHeader(&b, err, prefix)
	f.writeLocation(&b, err, gutter)
	f.writeSource(&b, err, gutter)
	if err.Hint != "" {
		f.writeAnnotation(&b, colorHint, "hint", err.Hint, gutter, true)
	}
	if err.Note != "" {
		f.writeAnnotation(&b, colorNote, "note", err.Note, gutter, false)
	}
	return b.String()
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor || s == "" {
		return s
	}
	return c.Sprint(s)
}

// writeHeader writes "error[E1001]: message" or "error[1/5]: message".
func (f *Formatter) writeHeader(b *strings.Builder, err *FormattedError, prefix string) {
	label := "error"
	if err.Kind != "" {
		label = err.Kind
	}
	b.WriteString(f.paint(colorErrorBold, label))

	tag := string(err.Code)
	if tag == "" {
		tag = prefix
	}
	if tag != "" {
		b.WriteString(f.paint(colorCode, "["+tag+"]"))
	}
	b.WriteString(f.paint(colorError, ": "))
	b.WriteString(err.Message)
	b.WriteString("\n")
}

// writeLocation writes the "  --> file.js:10:5" arrow line.
func (f *Formatter) writeLocation(b *strings.Builder, err *FormattedError, gutter int) {
	if err.Line == 0 && err.Filename == "" {
		return
	}
	var loc string
	switch {
	case err.Filename != "" && err.Line > 0:
		loc = fmt.Sprintf("%s:%d:%d", err.Filename, err.Line, err.Column)
	case err.Filename != "":
		loc = err.Filename
	default:
		loc = fmt.Sprintf("%d:%d", err.Line, err.Column)
	}
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(f.paint(colorLocation, "-->"))
	b.WriteString(" ")
	b.WriteString(f.paint(colorLocation, loc))
	b.WriteString("\n")
}

func (f *Formatter) writePipe(b *strings.Builder, gutter int, sep string) {
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(f.paint(colorGutter, sep))
}

func (f *Formatter) writeSource(b *strings.Builder, err *FormattedError, gutter int) {
	if len(err.SourceLines) == 0 {
		return
	}
	f.writePipe(b, gutter, " |\n")
	for _, line := range err.SourceLines {
		b.WriteString(f.paint(colorGutter, fmt.Sprintf("%*d | ", gutter, line.Number)))
		b.WriteString(f.paint(colorSource, line.Text))
		b.WriteString("\n")
		if !line.IsMain || err.Column <= 0 {
			continue
		}
		f.writePipe(b, gutter, " | ")
		b.WriteString(strings.Repeat(" ", err.Column-1))
		width := 1
		if err.EndColumn > err.Column {
			width = err.EndColumn - err.Column + 1
		}
		b.WriteString(f.paint(colorCaret, strings.Repeat("^", width)))
		b.WriteString("\n")
	}
}

func (f *Formatter) writeAnnotation(b *strings.Builder, c *color.Color, label, text string, gutter int, spacer bool) {
	if spacer {
		f.writePipe(b, gutter, " |\n")
	}
	f.writePipe(b, gutter, " = ")
	b.WriteString(f.paint(c, label+": "))
	b.WriteString(text)
	b.WriteString("\n")
}

// FormatMultiple formats multiple errors with consistent styling.
func (f *Formatter) FormatMultiple(errs []*FormattedError) string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return f.Format(errs[0])
	}

	var b strings.Builder
	total := len(errs)
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.FormatWithPrefix(err, fmt.Sprintf("%d/%d", i+1, total)))
	}
	b.WriteString("\n")
	b.WriteString(f.paint(colorErrorBold, fmt.Sprintf("found %d errors", total)))
	b.WriteString("\n")
	return b.String()
}
