// Package git reads repository metadata with go-git.
package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/backlog/internal/domain"
)

// DefaultRemote is the remote used to infer the target repository.
const DefaultRemote = "origin"

// Ensure Client implements domain.RemoteResolver.
var _ domain.RemoteResolver = (*Client)(nil)

// Client reads remotes of the repository containing dir.
type Client struct {
	dir string
}

// NewClient creates a new git client for dir. The repository is opened
// lazily so commands that do not need it work outside a checkout.
func NewClient(dir string) *Client {
	return &Client{dir: dir}
}

// RemoteURL returns the first URL of the named remote.
func (c *Client) RemoteURL(name string) (string, error) {
	repo, err := git.PlainOpenWithOptions(c.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", fmt.Errorf("%w: %s is not inside a git repository", domain.ErrNoRepository, c.dir)
		}
		return "", fmt.Errorf("open repository: %w", err)
	}

	remote, err := repo.Remote(name)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", fmt.Errorf("%w: remote %q not found", domain.ErrNoRepository, name)
		}
		return "", fmt.Errorf("get remote %q: %w", name, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: remote %q has no URL", domain.ErrNoRepository, name)
	}
	return urls[0], nil
}

// ResolveRepo returns explicit when set, otherwise the repository behind the
// default remote.
func ResolveRepo(explicit string, resolver domain.RemoteResolver) (domain.RepoRef, error) {
	if explicit != "" {
		return domain.ParseRepoRef(explicit)
	}
	if resolver == nil {
		return domain.RepoRef{}, domain.ErrNoRepository
	}
	u, err := resolver.RemoteURL(DefaultRemote)
	if err != nil {
		return domain.RepoRef{}, err
	}
	return domain.ParseRepoRef(u)
}
