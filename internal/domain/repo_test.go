package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		input string
		want  RepoRef
	}{
		{"owner/repo", RepoRef{Owner: "owner", Name: "repo"}},
		{"https://github.com/owner/repo.git", RepoRef{Host: "github.com", Owner: "owner", Name: "repo"}},
		{"https://github.com/owner/repo", RepoRef{Host: "github.com", Owner: "owner", Name: "repo"}},
		{"git@github.com:owner/repo.git", RepoRef{Host: "github.com", Owner: "owner", Name: "repo"}},
		{"ssh://git@gitlab.com/group/sub/repo.git", RepoRef{Host: "gitlab.com", Owner: "group/sub", Name: "repo"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRepoRef(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepoRef_Invalid(t *testing.T) {
	for _, input := range []string{"", "repo", "https://github.com/owner", "/repo"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseRepoRef(input)
			assert.ErrorIs(t, err, ErrInvalidRepoRef)
		})
	}
}

func TestRepoRef_String(t *testing.T) {
	assert.Equal(t, "owner/repo", RepoRef{Owner: "owner", Name: "repo"}.String())
	assert.Equal(t, "", RepoRef{}.String())
	assert.True(t, RepoRef{}.IsZero())
}
