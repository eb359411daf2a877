package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_WithHelp_ListsCommands(t *testing.T) {
	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	err := root.Execute()

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Publishing:")
	assert.Contains(t, output, "import")
	assert.Contains(t, output, "parse")
	assert.Contains(t, output, "labels")
	assert.Contains(t, output, "config")
	assert.Contains(t, output, "--log-file")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c, _ := newTestContainer(t)
	c.AppConfig.Warnings = []string{"unknown key in .backlog.toml: tracker.token"}
	writeDoc(t, "ISSUES.md", threeIssueDoc)

	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"parse"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stderr.String(), "Warning: unknown key in .backlog.toml: tracker.token")
}
