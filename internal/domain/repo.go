package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RepoRef identifies a repository on a hosting platform.
type RepoRef struct {
	Host  string // e.g. "github.com"; empty when given as owner/name
	Owner string // owner or namespace path (GitLab groups may be nested)
	Name  string
}

// String returns the owner/name form.
func (r RepoRef) String() string {
	if r.Owner == "" && r.Name == "" {
		return ""
	}
	return r.Owner + "/" + r.Name
}

// IsZero reports whether no repository is set.
func (r RepoRef) IsZero() bool {
	return r.Owner == "" && r.Name == ""
}

// ParseRepoRef parses "owner/name", an https URL or an scp-style ssh URL
// (git@host:owner/name.git).
func ParseRepoRef(raw string) (RepoRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RepoRef{}, ErrInvalidRepoRef
	}

	var host, path string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return RepoRef{}, fmt.Errorf("%w: %q: %v", ErrInvalidRepoRef, raw, err)
		}
		host = strings.ToLower(u.Hostname())
		path = u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		// git@github.com:owner/name.git
		at := strings.Index(raw, "@")
		colon := strings.Index(raw[at:], ":") + at
		host = strings.ToLower(raw[at+1 : colon])
		path = raw[colon+1:]
	default:
		path = raw
	}

	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, raw)
	}
	name := parts[len(parts)-1]
	owner := strings.Join(parts[:len(parts)-1], "/")
	if owner == "" || name == "" {
		return RepoRef{}, fmt.Errorf("%w: %q", ErrInvalidRepoRef, raw)
	}
	return RepoRef{Host: host, Owner: owner, Name: name}, nil
}
