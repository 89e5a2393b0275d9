package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllValid(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.js", "let a = 1;\n")
	b := writeFile(t, dir, "b.js", "function f(x) { return x * 2 }\n")

	stdout, stderr, err := execute(t, "", "check", a, b)
	require.NoError(t, err)
	assert.Equal(t, a+": ok\n"+b+": ok\n", stdout)
	assert.Empty(t, stderr)
}

func TestCheckQuiet(t *testing.T) {
	stdout, _, err := execute(t, "", "check", "-q", "--code", "1 + 1")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestCheckCode(t *testing.T) {
	stdout, _, err := execute(t, "", "check", "--code", "1 + 1")
	require.NoError(t, err)
	assert.Equal(t, "<code>: ok\n", stdout)
}

func TestCheckSingleFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.js", "let a = 1;\n")
	bad := writeFile(t, dir, "bad.js", "let a = 1;\nlet b = 2;\nconst c;\n")

	stdout, stderr, err := execute(t, "", "check", good, bad)
	require.Error(t, err)
	var code exitCode
	require.True(t, asExitCode(err, &code))
	assert.Equal(t, exitCode(1), code)

	assert.Equal(t, good+": ok\n", stdout)
	assert.Contains(t, stderr, "parse error[E1015]")
	assert.Contains(t, stderr, "--> "+bad+":3:7")
	assert.Contains(t, stderr, " 1 | let a = 1;")
	assert.Contains(t, stderr, " 2 | let b = 2;")
	assert.Contains(t, stderr, " 3 | const c;")
	assert.NotContains(t, stderr, "found")
}

func TestCheckContextLines(t *testing.T) {
	bad := writeFile(t, t.TempDir(), "bad.js", "let a = 1;\nlet b = 2;\nconst c;\n")

	_, stderr, err := execute(t, "", "check", "-C", "0", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, " 3 | const c;")
	assert.NotContains(t, stderr, " 2 | let b = 2;")
}

func TestCheckMultipleFailures(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.js", "let = 1")
	second := writeFile(t, dir, "second.js", "x = @")
	third := writeFile(t, dir, "third.js", "x")

	stdout, stderr, err := execute(t, "", "check", first, second, third)
	require.Error(t, err)
	assert.Equal(t, third+": ok\n", stdout)
	assert.Contains(t, stderr, "parse error[E1006]")
	assert.Contains(t, stderr, "syntax error[E0001]")
	assert.Contains(t, stderr, first+":1:5")
	assert.Contains(t, stderr, second+":1:5")
	assert.Contains(t, stderr, "found 2 errors")
}

func TestCheckNoInput(t *testing.T) {
	_, _, err := execute(t, "", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input provided")
}
