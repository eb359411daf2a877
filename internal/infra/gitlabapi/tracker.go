// Package gitlabapi publishes issues through the GitLab REST API.
package gitlabapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gitlab "gitlab.com/gitlab-org/api/client-go"

	"github.com/runoshun/backlog/internal/domain"
)

// Ensure Tracker implements domain.Tracker.
var _ domain.Tracker = (*Tracker)(nil)

// Tracker implements domain.Tracker with the GitLab client.
type Tracker struct {
	gl    *gitlab.Client
	repo  domain.RepoRef
	token string
}

// New creates a Tracker for the GitLab instance at baseURL
// (e.g. https://gitlab.com). An empty token is reported by CheckAvailable.
func New(token, baseURL string, repo domain.RepoRef) (*Tracker, error) {
	gl, err := gitlab.NewClient(token, gitlab.WithBaseURL(strings.TrimSuffix(baseURL, "/")+"/api/v4"))
	if err != nil {
		return nil, fmt.Errorf("gitlab client: %w", err)
	}
	return &Tracker{gl: gl, repo: repo, token: token}, nil
}

// pid is the project path used as the project ID.
func (t *Tracker) pid() string {
	return t.repo.String()
}

// CheckAvailable verifies a token and a target project are configured.
func (t *Tracker) CheckAvailable(_ context.Context) error {
	if t.token == "" {
		return &domain.PreflightError{
			Err:   fmt.Errorf("%w: GITLAB_TOKEN", domain.ErrMissingToken),
			Hints: []string{"Export a token with api scope: export GITLAB_TOKEN=<token>"},
		}
	}
	if t.repo.IsZero() {
		return &domain.PreflightError{
			Err:   domain.ErrNoRepository,
			Hints: []string{"Pass --repo group/project or set [tracker] repo in .backlog.toml"},
		}
	}
	return nil
}

// CheckAuth fetches the current user.
func (t *Tracker) CheckAuth(ctx context.Context) error {
	if _, _, err := t.gl.Users.CurrentUser(gitlab.WithContext(ctx)); err != nil {
		return &domain.PreflightError{
			Err:   fmt.Errorf("%w: %v", domain.ErrTrackerUnauthenticated, err),
			Hints: []string{"Check that GITLAB_TOKEN is valid and not expired"},
		}
	}
	return nil
}

// UpsertLabel creates the label, or updates its color on 409 Conflict.
func (t *Tracker) UpsertLabel(ctx context.Context, name, color string) (domain.LabelOutcome, error) {
	hex := "#" + strings.TrimPrefix(color, "#")
	_, resp, err := t.gl.Labels.CreateLabel(t.pid(), &gitlab.CreateLabelOptions{
		Name:  gitlab.Ptr(name),
		Color: gitlab.Ptr(hex),
	}, gitlab.WithContext(ctx))
	if err == nil {
		return domain.LabelCreated, nil
	}
	if resp == nil || resp.StatusCode != http.StatusConflict {
		return domain.LabelFailed, fmt.Errorf("gitlab create label: %w", err)
	}

	_, _, err = t.gl.Labels.UpdateLabel(t.pid(), name, &gitlab.UpdateLabelOptions{
		Color: gitlab.Ptr(hex),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return domain.LabelFailed, fmt.Errorf("gitlab update label: %w", err)
	}
	return domain.LabelExisted, nil
}

// CreateIssue creates the issue and returns its web URL.
func (t *Tracker) CreateIssue(ctx context.Context, record domain.IssueRecord) (string, error) {
	opts := &gitlab.CreateIssueOptions{
		Title:       gitlab.Ptr(record.Title),
		Description: gitlab.Ptr(record.Body),
	}
	if len(record.Labels) > 0 {
		labels := gitlab.LabelOptions(record.Labels)
		opts.Labels = &labels
	}
	issue, _, err := t.gl.Issues.CreateIssue(t.pid(), opts, gitlab.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("gitlab create issue: %w", err)
	}
	return issue.WebURL, nil
}
