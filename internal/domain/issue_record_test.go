package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIssueBody(t *testing.T) {
	tests := []struct {
		name        string
		description string
		acceptance  string
		files       string
		want        string
	}{
		{
			name:        "all sections",
			description: "Fix the bug",
			acceptance:  "All tests pass",
			files:       "src/app.py",
			want:        "Fix the bug\n\n## Acceptance Criteria\nAll tests pass\n\n## Files to Modify\nsrc/app.py",
		},
		{
			name:        "description only",
			description: "Fix the bug",
			want:        "Fix the bug",
		},
		{
			name:  "files only",
			files: "main.go",
			want:  "## Files to Modify\nmain.go",
		},
		{
			name: "nothing",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildIssueBody(tt.description, tt.acceptance, tt.files))
		})
	}
}

func TestIssueRecord_Validate(t *testing.T) {
	assert.NoError(t, IssueRecord{Title: "ok"}.Validate())
	assert.Error(t, IssueRecord{}.Validate())
	assert.Error(t, IssueRecord{Title: "   "}.Validate())
}
