// Package githubapi publishes issues through the GitHub REST API.
package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/runoshun/backlog/internal/domain"
)

// Ensure Tracker implements domain.Tracker.
var _ domain.Tracker = (*Tracker)(nil)

// Tracker implements domain.Tracker with go-github.
type Tracker struct {
	gh    *github.Client
	repo  domain.RepoRef
	token string
}

// Option configures a Tracker.
type Option func(*Tracker) error

// WithBaseURL points the client at a GitHub Enterprise or test server.
func WithBaseURL(rawURL string) Option {
	return func(t *Tracker) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		u, err := url.Parse(rawURL)
		if err != nil {
			return fmt.Errorf("github base url: %w", err)
		}
		t.gh.BaseURL = u
		return nil
	}
}

// New creates a Tracker authenticated with token. An empty token is
// accepted here and reported by CheckAvailable.
func New(ctx context.Context, token string, repo domain.RepoRef, opts ...Option) (*Tracker, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	t := &Tracker{
		gh:    github.NewClient(oauth2.NewClient(ctx, ts)),
		repo:  repo,
		token: token,
	}
	if repo.Host != "" && repo.Host != "github.com" {
		enterprise, err := t.gh.WithEnterpriseURLs("https://"+repo.Host+"/", "https://"+repo.Host+"/")
		if err != nil {
			return nil, fmt.Errorf("github enterprise client: %w", err)
		}
		t.gh = enterprise
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// CheckAvailable verifies a token and a target repository are configured.
func (t *Tracker) CheckAvailable(_ context.Context) error {
	if t.token == "" {
		return &domain.PreflightError{
			Err:   fmt.Errorf("%w: GITHUB_TOKEN", domain.ErrMissingToken),
			Hints: []string{"Export a token with repo scope: export GITHUB_TOKEN=<token>"},
		}
	}
	if t.repo.IsZero() {
		return &domain.PreflightError{
			Err:   domain.ErrNoRepository,
			Hints: []string{"Pass --repo owner/name or set [tracker] repo in .backlog.toml"},
		}
	}
	return nil
}

// CheckAuth fetches the authenticated user.
func (t *Tracker) CheckAuth(ctx context.Context) error {
	if _, _, err := t.gh.Users.Get(ctx, ""); err != nil {
		return &domain.PreflightError{
			Err:   fmt.Errorf("%w: %v", domain.ErrTrackerUnauthenticated, err),
			Hints: []string{"Check that GITHUB_TOKEN is valid and not expired"},
		}
	}
	return nil
}

// UpsertLabel creates the label, or edits its color if it already exists.
func (t *Tracker) UpsertLabel(ctx context.Context, name, color string) (domain.LabelOutcome, error) {
	label := &github.Label{Name: github.String(name), Color: github.String(color)}
	_, _, err := t.gh.Issues.CreateLabel(ctx, t.repo.Owner, t.repo.Name, label)
	if err == nil {
		return domain.LabelCreated, nil
	}
	if !isAlreadyExists(err) {
		return domain.LabelFailed, fmt.Errorf("github create label: %w", err)
	}

	if _, _, err := t.gh.Issues.EditLabel(ctx, t.repo.Owner, t.repo.Name, name, label); err != nil {
		return domain.LabelFailed, fmt.Errorf("github edit label: %w", err)
	}
	return domain.LabelExisted, nil
}

// CreateIssue creates the issue and returns its HTML URL.
func (t *Tracker) CreateIssue(ctx context.Context, record domain.IssueRecord) (string, error) {
	labels := record.Labels
	if labels == nil {
		labels = []string{}
	}
	req := &github.IssueRequest{
		Title:  github.String(record.Title),
		Body:   github.String(record.Body),
		Labels: &labels,
	}
	issue, _, err := t.gh.Issues.Create(ctx, t.repo.Owner, t.repo.Name, req)
	if err != nil {
		return "", fmt.Errorf("github create issue: %w", err)
	}
	return issue.GetHTMLURL(), nil
}

// isAlreadyExists reports a 422 validation error with code already_exists.
func isAlreadyExists(err error) bool {
	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) || errResp.Response == nil {
		return false
	}
	if errResp.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	for _, e := range errResp.Errors {
		if e.Code == "already_exists" {
			return true
		}
	}
	return false
}
