package cli

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/runoshun/backlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_PublishesEverything(t *testing.T) {
	c, tracker := newTestContainer(t)
	writeDoc(t, "ISSUES.md", threeIssueDoc)

	out, err := runCommand(t, c, "import")

	require.NoError(t, err)
	assert.Contains(t, out, "Parsing ISSUES.md...")
	assert.Contains(t, out, "Found 3 issues")
	assert.Contains(t, out, "Saved issues to issues.json")
	assert.Contains(t, out, "Found 5 unique labels: backend, bug, documentation, enhancement, frontend")
	assert.Contains(t, out, "Created label: bug")
	assert.Contains(t, out, "[2/3] Creating: Fix token refresh")
	assert.Contains(t, out, "Created: https://example.com/issues/3")
	assert.Contains(t, out, "Done! Created: 3, Failed: 0")
	assert.Len(t, tracker.Created, 3)
	assert.Equal(t, "d73a4a", tracker.Labels["bug"])

	data, err := os.ReadFile("issues.json")
	require.NoError(t, err)
	var records []domain.IssueRecord
	require.NoError(t, json.Unmarshal(data, &records))
	assert.Len(t, records, 3)
}

func TestImportCommand_ContinuesAfterFailure(t *testing.T) {
	c, tracker := newTestContainer(t)
	tracker.CreateErrs[2] = errors.New("rate limited")
	tracker.LabelErrs["bug"] = errors.New("forbidden")
	writeDoc(t, "ISSUES.md", threeIssueDoc)

	out, err := runCommand(t, c, "import")

	require.NoError(t, err)
	assert.Contains(t, out, "Error creating label 'bug': forbidden")
	assert.Contains(t, out, "Failed: rate limited")
	assert.Contains(t, out, "Done! Created: 2, Failed: 1")
}

func TestImportCommand_ExistingLabel(t *testing.T) {
	c, tracker := newTestContainer(t)
	tracker.LabelOutcomes["bug"] = domain.LabelExisted
	writeDoc(t, "ISSUES.md", threeIssueDoc)

	out, err := runCommand(t, c, "import")

	require.NoError(t, err)
	assert.Contains(t, out, "Label 'bug': already existed")
}

func TestImportCommand_PreflightFailure(t *testing.T) {
	c, tracker := newTestContainer(t)
	tracker.AvailableErr = &domain.PreflightError{
		Err:   domain.ErrTrackerUnavailable,
		Hints: []string{"Install it with: brew install gh (see https://cli.github.com)", "Then authenticate with: gh auth login"},
	}
	writeDoc(t, "ISSUES.md", threeIssueDoc)

	out, err := runCommand(t, c, "import")

	assert.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, "Saved issues to issues.json")
	assert.Contains(t, out, domain.ErrTrackerUnavailable.Error())
	assert.Contains(t, out, "Then authenticate with: gh auth login")
	assert.NotContains(t, out, "Done!")
	assert.Empty(t, tracker.Labels)
	assert.Zero(t, tracker.Attempts)
}

func TestImportCommand_DryRun(t *testing.T) {
	c, tracker := newTestContainer(t)
	tracker.AvailableErr = errors.New("not checked")
	writeDoc(t, "backlog.md", threeIssueDoc)

	out, err := runCommand(t, c, "import", "backlog.md", "--dry-run", "--snapshot", "out.yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "Parsing backlog.md...")
	assert.Contains(t, out, "Saved issues to out.yaml")
	assert.Contains(t, out, "Dry run")
	assert.True(t, fileExists("out.yaml"))
	assert.Zero(t, tracker.Attempts)
}

func TestImportCommand_NoSnapshotSkipLabels(t *testing.T) {
	c, tracker := newTestContainer(t)
	writeDoc(t, "ISSUES.md", threeIssueDoc)

	out, err := runCommand(t, c, "import", "--no-snapshot", "--skip-labels")

	require.NoError(t, err)
	assert.NotContains(t, out, "Saved issues to")
	assert.NotContains(t, out, "unique labels")
	assert.False(t, fileExists("issues.json"))
	assert.Empty(t, tracker.Labels)
	assert.Len(t, tracker.Created, 3)
}

func TestImportCommand_MissingFile(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := runCommand(t, c, "import", "nope.md")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.md")
}
