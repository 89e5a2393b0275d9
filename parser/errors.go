package parser

import (
	stderrors "errors"
	"fmt"

	"github.com/risor-io/jsfront/errors"
	"github.com/risor-io/jsfront/token"
)

// Sentinel causes attached to parser errors. Use errors.Is to test for them.
var (
	ErrUnexpectedToken      = stderrors.New("unexpected token")
	ErrInvalidTarget        = stderrors.New("invalid assignment target")
	ErrDuplicateDefault     = stderrors.New("duplicate default clause in switch")
	ErrDuplicateConstructor = stderrors.New("a class may only have one constructor")
	ErrStaticConstructor    = stderrors.New("a class constructor may not be static")
	ErrConstWithoutInit     = stderrors.New("const declarations must be initialized")
	ErrInvalidPrivateName   = stderrors.New("invalid private name")
	ErrMaxDepth             = stderrors.New("maximum nesting depth exceeded")
)

// ErrorOpts is a struct that holds a variety of error data.
// All fields are optional, although one of `Cause` or `Message`
// are recommended. When both are set, `Message` is reported and
// `Cause` remains available through errors.Is and errors.As.
type ErrorOpts struct {
	ErrType       string
	Code          errors.ErrorCode
	Message       string
	Cause         error
	File          string
	StartPosition token.Position
	EndPosition   token.Position
	SourceCode    string
	Hint          string
}

// NewParserError returns a new BaseParserError populated with
// the given error data.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType:       opts.ErrType,
		code:          opts.Code,
		message:       opts.Message,
		cause:         opts.Cause,
		file:          opts.File,
		startPosition: opts.StartPosition,
		endPosition:   opts.EndPosition,
		sourceCode:    opts.SourceCode,
		hint:          opts.Hint,
	}
}

// ParserError is an interface that all parser errors implement.
type ParserError interface {
	Type() string
	Code() errors.ErrorCode
	Message() string
	Cause() error
	File() string
	StartPosition() token.Position
	EndPosition() token.Position
	SourceCode() string
	Error() string
	errors.FriendlyError
	errors.FormattableError
}

// BaseParserError is the simplest implementation of ParserError.
type BaseParserError struct {
	// Type of the error, e.g. "syntax error"
	errType string
	// Diagnostic code, e.g. E1001
	code errors.ErrorCode
	// The error message
	message string
	// The wrapped error
	cause error
	// File where the error occurred
	file string
	// Start position of the error in the input string
	startPosition token.Position
	// End position of the error in the input string
	endPosition token.Position
	// Relevant line of source code text
	sourceCode string
	// Suggested fix, if any
	hint string
}

func (e *BaseParserError) Error() string {
	msg := e.Message()
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	if e.file != "" {
		return fmt.Sprintf("%s (%s:%d:%d)", msg, e.file,
			e.startPosition.LineNumber(), e.startPosition.ColumnNumber())
	}
	return fmt.Sprintf("%s (line %d, column %d)", msg,
		e.startPosition.LineNumber(), e.startPosition.ColumnNumber())
}

func (e *BaseParserError) FriendlyErrorMessage() string {
	formatter := errors.NewFormatter(false)
	return formatter.Format(e.ToFormatted())
}

// ToFormatted converts the parser error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	start := e.StartPosition()
	end := e.EndPosition()
	endColumn := start.ColumnNumber()
	if end.Line == start.Line && end.Char > start.Char {
		endColumn = end.Column
	}
	return &errors.FormattedError{
		Code:      e.code,
		Kind:      e.errType,
		Message:   e.Message(),
		Filename:  e.file,
		Line:      start.LineNumber(),
		Column:    start.ColumnNumber(),
		EndColumn: endColumn,
		SourceLines: []errors.SourceLineEntry{
			{Number: start.LineNumber(), Text: e.sourceCode, IsMain: true},
		},
		Hint: e.hint,
	}
}

func (e *BaseParserError) Code() errors.ErrorCode {
	return e.code
}

func (e *BaseParserError) Cause() error {
	return e.cause
}

// Message returns the error message, falling back to the cause's message.
func (e *BaseParserError) Message() string {
	if e.message != "" {
		return e.message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return ""
}

func (e *BaseParserError) Line() int {
	return e.startPosition.Line
}

func (e *BaseParserError) StartPosition() token.Position {
	return e.startPosition
}

func (e *BaseParserError) EndPosition() token.Position {
	return e.endPosition
}

func (e *BaseParserError) File() string {
	return e.file
}

func (e *BaseParserError) SourceCode() string {
	return e.sourceCode
}

func (e *BaseParserError) Hint() string {
	return e.hint
}

func (e *BaseParserError) Unwrap() error {
	return e.cause
}

func (e *BaseParserError) Type() string {
	return e.errType
}

// NewSyntaxError returns a new SyntaxError populated with the given error
// data. Syntax errors report input that could not be tokenized.
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

type SyntaxError struct {
	*BaseParserError
}

// UnexpectedTokenError reports a token that does not fit the grammar at the
// point it was found.
type UnexpectedTokenError struct {
	*BaseParserError
	// Expected is the token type the grammar required. It is empty when any
	// of several tokens would have been accepted.
	Expected token.Type
	// Actual is the token that was found instead.
	Actual token.Token
}

func tokenTypeDescription(t token.Type) string {
	switch t {
	case token.EOF:
		return "end of file"
	case token.IDENT:
		return "identifier"
	case token.NUMBER:
		return "number"
	case token.PRIVATE:
		return "private name"
	default:
		return fmt.Sprintf("%q", token.Spelling(t))
	}
}

func tokenDescription(t token.Token) string {
	switch t.Type {
	case token.EOF:
		return "end of file"
	default:
		if t.Literal == "" {
			return tokenTypeDescription(t.Type)
		}
		return fmt.Sprintf("%q", t.Literal)
	}
}
