package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hivemcp/internal/cli"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "hivemcp", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "tools", "status", "call", "version"})
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCodeSuccess, getExitCode(nil))
	assert.Equal(t, ExitCodeError, getExitCode(errors.New("boom")))

	unreachable := fmt.Errorf("status: %w", &cli.ConnectionError{Endpoint: "x", Reason: errors.New("refused")})
	assert.Equal(t, ExitCodeUnreachable, getExitCode(unreachable))
}

// executeCommand runs the root command with args and returns its stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	_, err := rootCmd.ExecuteC()
	return buf.String(), err
}

func TestVersionFlag(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	SetVersion("1.0.0")
	rootCmd.SetVersionTemplate(`{{printf "hivemcp version %s\n" .Version}}`)

	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "hivemcp version 1.0.0\n", out)
}
