package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GREETER_ADDR", "")
	var out bytes.Buffer
	err := run(context.Background(), args, &out, log.NewStdLogger(io.Discard))
	return out.String(), err
}

func TestRunInProcess(t *testing.T) {
	out, err := runCLI(t, "simple")
	require.NoError(t, err)
	assert.Equal(t, "Hello from Rust\n", out)

	out, err = runCLI(t, "greet", "O'Brien")
	require.NoError(t, err)
	assert.Equal(t, "Hello, O'Brien!\n", out)

	out, err = runCLI(t, "greet", "")
	require.NoError(t, err)
	assert.Equal(t, "Hello, !\n", out)
}

func TestRunUsageErrors(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"unknown"},
		{"greet"},
		{"simple", "extra"},
		{"-bogus"},
	} {
		_, err := runCLI(t, args...)
		assert.ErrorIs(t, err, errUsage, "args=%v", args)
	}
}

func TestRunRejectsNonPositiveTimeout(t *testing.T) {
	for _, args := range [][]string{
		{"-timeout", "0", "simple"},
		{"-timeout", "-1s", "greet", "Alice"},
		{"-addr", "127.0.0.1:1", "-timeout", "0", "simple"},
		{"-addr", "127.0.0.1:1", "-timeout", "-1s", "list"},
	} {
		out, err := runCLI(t, args...)
		assert.ErrorIs(t, err, errUsage, "args=%v", args)
		assert.Empty(t, out)
	}
}

func TestRunListRequiresAddr(t *testing.T) {
	_, err := runCLI(t, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-addr")
}
