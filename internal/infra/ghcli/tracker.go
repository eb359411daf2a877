// Package ghcli publishes issues through the GitHub CLI (gh).
package ghcli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/backlog/internal/domain"
)

// Program is the GitHub CLI executable name.
const Program = "gh"

// Ensure Tracker implements domain.Tracker.
var _ domain.Tracker = (*Tracker)(nil)

// Tracker implements domain.Tracker by shelling out to gh.
type Tracker struct {
	exec    domain.CommandExecutor
	repo    domain.RepoRef // empty = let gh pick the repository of the working directory
	tempDir string         // directory for body files; empty = os.TempDir()
}

// New creates a Tracker. repo may be empty.
func New(exec domain.CommandExecutor, repo domain.RepoRef) *Tracker {
	return &Tracker{exec: exec, repo: repo}
}

// WithTempDir sets the directory used for temporary body files.
func (t *Tracker) WithTempDir(dir string) *Tracker {
	t.tempDir = dir
	return t
}

// CommandError carries the stderr of a failed gh invocation.
type CommandError struct {
	Err    error
	Stderr string
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// CheckAvailable runs `gh --version`.
func (t *Tracker) CheckAvailable(ctx context.Context) error {
	if _, err := t.run(ctx, "--version"); err != nil {
		return &domain.PreflightError{
			Err: fmt.Errorf("%w: GitHub CLI (gh) not found", domain.ErrTrackerUnavailable),
			Hints: []string{
				"Install it with: brew install gh (see https://cli.github.com)",
				"Then authenticate with: gh auth login",
			},
		}
	}
	return nil
}

// CheckAuth runs `gh auth status`.
func (t *Tracker) CheckAuth(ctx context.Context) error {
	args := []string{"auth", "status"}
	if t.repo.Host != "" {
		args = append(args, "--hostname", t.repo.Host)
	}
	if _, err := t.run(ctx, args...); err != nil {
		return &domain.PreflightError{
			Err:   fmt.Errorf("%w: %v", domain.ErrTrackerUnauthenticated, err),
			Hints: []string{"Run: gh auth login"},
		}
	}
	return nil
}

// UpsertLabel creates the label, or updates its color with --force if it
// already exists.
func (t *Tracker) UpsertLabel(ctx context.Context, name, color string) (domain.LabelOutcome, error) {
	args := t.withRepo("label", "create", name, "--color", color)
	_, err := t.run(ctx, args...)
	if err == nil {
		return domain.LabelCreated, nil
	}
	if !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return domain.LabelFailed, err
	}

	if _, err := t.run(ctx, append(args, "--force")...); err != nil {
		return domain.LabelFailed, err
	}
	return domain.LabelExisted, nil
}

// CreateIssue runs `gh issue create` with the body passed through a
// temporary file and returns the issue URL printed by gh.
func (t *Tracker) CreateIssue(ctx context.Context, record domain.IssueRecord) (string, error) {
	var ref string
	err := withBodyFile(t.tempDir, record.Body, func(path string) error {
		args := t.withRepo("issue", "create", "--title", record.Title, "--body-file", path)
		for _, label := range record.Labels {
			args = append(args, "--label", label)
		}
		out, err := t.run(ctx, args...)
		if err != nil {
			return err
		}
		ref = strings.TrimSpace(out)
		return nil
	})
	return ref, err
}

func (t *Tracker) withRepo(args ...string) []string {
	if t.repo.IsZero() {
		return args
	}
	repo := t.repo.String()
	if t.repo.Host != "" && t.repo.Host != "github.com" {
		repo = t.repo.Host + "/" + repo
	}
	return append(args, "--repo", repo)
}

// run executes gh and returns stdout. Failures are *CommandError.
func (t *Tracker) run(ctx context.Context, args ...string) (string, error) {
	cmd := domain.NewCommand(Program, args, "")
	cmd.Env = []string{"GH_PROMPT_DISABLED=1"}

	var stdout, stderr bytes.Buffer
	if err := t.exec.ExecuteWithContext(ctx, cmd, &stdout, &stderr); err != nil {
		return stdout.String(), &CommandError{Err: err, Stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.String(), nil
}

// withBodyFile writes body to a temporary file, calls fn with its path and
// removes the file on every exit path.
func withBodyFile(dir, body string, fn func(path string) error) error {
	f, err := os.CreateTemp(dir, "backlog-body-*.md")
	if err != nil {
		return fmt.Errorf("create body file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return fmt.Errorf("write body file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close body file: %w", err)
	}
	return fn(path)
}
