package domain

import (
	"context"
	"io"
)

// Tracker is the remote issue tracker records are published to.
type Tracker interface {
	// CheckAvailable verifies the tracker can be reached at all
	// (CLI installed, token present). Failures are *PreflightError.
	CheckAvailable(ctx context.Context) error

	// CheckAuth verifies the caller is authenticated. Failures are *PreflightError.
	CheckAuth(ctx context.Context) error

	// UpsertLabel creates a label or updates its color if it already exists.
	UpsertLabel(ctx context.Context, name, color string) (LabelOutcome, error)

	// CreateIssue creates one issue and returns a reference to it (usually a URL).
	CreateIssue(ctx context.Context, record IssueRecord) (string, error)
}

// CommandExecutor executes external commands.
type CommandExecutor interface {
	// ExecuteWithContext runs a command with context and custom stdout/stderr writers.
	ExecuteWithContext(ctx context.Context, cmd *ExecCommand, stdout, stderr io.Writer) error
}

// RemoteResolver looks up git remotes of the working directory.
type RemoteResolver interface {
	// RemoteURL returns the first URL of the named remote.
	RemoteURL(name string) (string, error)
}

// SnapshotWriter persists parsed records for auditing.
type SnapshotWriter interface {
	Write(path string, records []IssueRecord) error
}

// Reporter receives progress events while records are published.
type Reporter interface {
	// Parsed is called once the document is parsed. snapshotPath is empty
	// when no snapshot was written.
	Parsed(count int, snapshotPath string)

	// LabelsPlanned is called before labels are provisioned.
	LabelsPlanned(labels []string)

	// LabelResult is called once per provisioned label.
	LabelResult(name string, outcome LabelOutcome, err error)

	// IssuesPlanned is called before the first creation attempt.
	IssuesPlanned(total int)

	// IssueStarted is called before each creation attempt (index is 1-based).
	IssueStarted(index, total int, title string)

	// IssueResult is called after each creation attempt.
	IssueResult(index int, ref string, err error)
}

// Logger writes leveled log entries. itemID is the 1-based record index,
// or 0 for run-wide entries.
type Logger interface {
	Info(itemID int, category, msg string)
	Debug(itemID int, category, msg string)
	Warn(itemID int, category, msg string)
	Error(itemID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadGlobal returns the defaults merged with the global configuration only.
	LoadGlobal() (*Config, error)
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	GetRepoConfigInfo() ConfigInfo
	GetGlobalConfigInfo() ConfigInfo
	InitRepoConfig(cfg *Config) error
	InitGlobalConfig(cfg *Config) error
}
