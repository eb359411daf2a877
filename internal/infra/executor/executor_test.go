package executor

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/backlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shell(script, dir string) *domain.ExecCommand {
	return domain.NewCommand("sh", []string{"-c", script}, dir)
}

// run executes cmd and returns its stdout.
func run(t *testing.T, cmd *domain.ExecCommand) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := NewClient().ExecuteWithContext(context.Background(), cmd, &stdout, &stderr)
	return stdout.String(), err
}

func TestClient_ExecuteWithContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	t.Run("executes simple echo command", func(t *testing.T) {
		output, err := run(t, shell("echo hello", ""))
		require.NoError(t, err)
		assert.Equal(t, "hello\n", output)
	})

	t.Run("executes command in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		output, err := run(t, shell("pwd", dir))
		require.NoError(t, err)
		assert.Contains(t, strings.TrimSpace(output), dir)
	})

	t.Run("returns error for non-existent command", func(t *testing.T) {
		_, err := run(t, domain.NewCommand("nonexistent-command-xyz", nil, ""))
		require.Error(t, err)
	})

	t.Run("returns error for failing command", func(t *testing.T) {
		_, err := run(t, shell("exit 1", ""))
		require.Error(t, err)
	})

	t.Run("passes extra environment", func(t *testing.T) {
		cmd := shell("echo $BACKLOG_TEST_VALUE", "")
		cmd.Env = []string{"BACKLOG_TEST_VALUE=42"}
		output, err := run(t, cmd)
		require.NoError(t, err)
		assert.Equal(t, "42\n", output)
	})

	t.Run("separates stdout and stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := NewClient().ExecuteWithContext(context.Background(), shell("echo out; echo err >&2", ""), &stdout, &stderr)
		require.NoError(t, err)
		assert.Equal(t, "out\n", stdout.String())
		assert.Equal(t, "err\n", stderr.String())
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		var stdout, stderr bytes.Buffer
		err := NewClient().ExecuteWithContext(ctx, shell("exec sleep 5", ""), &stdout, &stderr)
		require.Error(t, err)
	})
}
