package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/backlog/internal/app"
	"github.com/runoshun/backlog/internal/infra/snapshot"
	"github.com/runoshun/backlog/internal/testutil"
	"github.com/stretchr/testify/require"
)

const threeIssueDoc = `# Backlog

---

## Issue #1: Add login page
**Labels:** frontend, enhancement

**Description:**
Build the login page.

---

## Issue #2: Fix token refresh
**Labels:** backend, bug

**Description:**
Refresh tokens expire too early.

---

## Issue #3: Document the API
**Labels:** documentation, backend

**Files to Modify:**
- docs/api.md
`

// newTestContainer returns a container backed by a mock tracker and a real
// snapshot writer. The test runs inside a fresh temporary directory.
func newTestContainer(t *testing.T) (*app.Container, *testutil.MockTracker) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	tracker := testutil.NewMockTracker()
	c := app.NewWithDeps(app.Config{WorkDir: dir}, nil, tracker, snapshot.New(), nil)
	return c, tracker
}

func writeDoc(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, c *app.Container, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func fileExists(name string) bool {
	_, err := os.Stat(filepath.Clean(name))
	return err == nil
}
