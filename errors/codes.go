package errors

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E0xxx: Lexical errors
//   - E1xxx: Parse errors
type ErrorCode string

const (
	// Lexical errors (E0xxx)
	E0001 ErrorCode = "E0001" // Unexpected character
	E0002 ErrorCode = "E0002" // Invalid number literal

	// Parse errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected token
	E1003 ErrorCode = "E1003" // Invalid syntax
	E1004 ErrorCode = "E1004" // Missing expression
	E1005 ErrorCode = "E1005" // Invalid assignment target
	E1006 ErrorCode = "E1006" // Expected identifier
	E1007 ErrorCode = "E1007" // Unclosed delimiter
	E1009 ErrorCode = "E1009" // Maximum nesting depth exceeded
	E1012 ErrorCode = "E1012" // Duplicate default clause
	E1013 ErrorCode = "E1013" // Duplicate constructor
	E1014 ErrorCode = "E1014" // Static constructor
	E1015 ErrorCode = "E1015" // Const requires initializer
	E1016 ErrorCode = "E1016" // Invalid private name
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E0001: "unexpected character",
	E0002: "invalid number literal",

	E1001: "unexpected token",
	E1003: "invalid syntax",
	E1004: "missing expression",
	E1005: "invalid assignment target",
	E1006: "expected identifier",
	E1007: "unclosed delimiter",
	E1009: "maximum nesting depth exceeded",
	E1012: "duplicate default clause",
	E1013: "duplicate constructor",
	E1014: "static constructor",
	E1015: "const requires initializer",
	E1016: "invalid private name",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '0':
		return "lex"
	case '1':
		return "parse"
	default:
		return "unknown"
	}
}
