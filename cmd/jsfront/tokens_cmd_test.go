package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/jsfront/lexer"
	"github.com/risor-io/jsfront/parser"
)

func TestTokensText(t *testing.T) {
	stdout, _, err := execute(t, "", "tokens", "--code", "let x = 1;\nx++")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	expected := [][]string{
		{"1:1", "LET", "let"},
		{"1:5", "IDENT", "x"},
		{"1:7", "=", "="},
		{"1:9", "NUMBER", "1"},
		{"1:10", ";", ";"},
		{"2:1", "IDENT", "x"},
		{"2:2", "++", "++"},
		{"2:4", "EOF"},
	}
	require.Len(t, lines, len(expected))
	for i, want := range expected {
		assert.Equal(t, want, strings.Fields(lines[i]), "line %d", i+1)
	}
}

func TestTokensJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "tokens", "-o", "json", "--code", "a.#b")
	require.NoError(t, err)

	var tokens []TokenJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &tokens))
	assert.Equal(t, []TokenJSON{
		{Type: "IDENT", Literal: "a", Line: 1, Column: 1, Offset: 0},
		{Type: ".", Literal: ".", Line: 1, Column: 2, Offset: 1},
		{Type: "PRIVATE", Literal: "#b", Line: 1, Column: 3, Offset: 2},
		{Type: "EOF", Line: 1, Column: 5, Offset: 4},
	}, tokens)
}

func TestTokensLexError(t *testing.T) {
	_, _, err := execute(t, "", "tokens", "--code", "let s = @text;")
	require.Error(t, err)
	assert.ErrorIs(t, err, lexer.ErrUnexpectedChar)

	var pe parser.ParserError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 9, pe.StartPosition().ColumnNumber())
}

func TestTokensUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "", "tokens", "-o", "xml", "--code", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format: xml")
}
