package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/risor-io/jsfront/parser"
)

// execute runs the CLI with the given arguments and captures its output. The
// home directory is pointed at an empty temp dir so that no user config file
// is picked up.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin))
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "ast", "--log-level", "loud", "--code", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "ast", "--log-level", "debug", "--code", "let = 1")
	require.Error(t, err)
	assert.Contains(t, stderr, "parse failed")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "config.yaml", "max-depth: 3\n")

	_, _, err := execute(t, "", "ast", "--config", config, "--code", "((((((1))))))")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrMaxDepth)

	_, _, err = execute(t, "", "ast", "--config", config, "--code", "(1)")
	require.NoError(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "", "ast", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "--code", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestConfigFromHomeDir(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, configName, "max-depth: 2\n")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(""))
	cmd.SetArgs([]string{"ast", "--code", "[[[[1]]]]"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	assert.ErrorIs(t, err, parser.ErrMaxDepth)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("JSFRONT_MAX_DEPTH", "2")
	_, _, err := execute(t, "", "check", "--code", "[[[[1]]]]")
	require.Error(t, err)
	var code exitCode
	require.True(t, asExitCode(err, &code))
	assert.Equal(t, exitCode(1), code)
}

func TestExitCodeError(t *testing.T) {
	assert.Equal(t, "exit status 1", exitCode(1).Error())
	var code exitCode
	assert.False(t, asExitCode(assert.AnError, &code))
}
