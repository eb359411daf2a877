// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/backlog/internal/domain"
)

// MockExecutor is a test double for domain.CommandExecutor.
// Handler decides the outcome of every call; nil means success with no output.
type MockExecutor struct {
	Handler func(cmd *domain.ExecCommand) (stdout, stderr string, err error)
	Calls   []*domain.ExecCommand
}

// ExecuteWithContext records the call and writes the handler's output.
func (m *MockExecutor) ExecuteWithContext(_ context.Context, cmd *domain.ExecCommand, stdout, stderr io.Writer) error {
	out, errOut, err := m.handle(cmd)
	if stdout != nil {
		_, _ = io.WriteString(stdout, out)
	}
	if stderr != nil {
		_, _ = io.WriteString(stderr, errOut)
	}
	return err
}

func (m *MockExecutor) handle(cmd *domain.ExecCommand) (string, string, error) {
	m.Calls = append(m.Calls, cmd)
	if m.Handler == nil {
		return "", "", nil
	}
	return m.Handler(cmd)
}

// CallArgs returns the arguments of every recorded call joined by spaces.
func (m *MockExecutor) CallArgs() []string {
	out := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		out = append(out, strings.Join(append([]string{c.Program}, c.Args...), " "))
	}
	return out
}

// MockTracker is a test double for domain.Tracker.
// Fields are ordered to minimize memory padding.
type MockTracker struct {
	AvailableErr error
	AuthErr      error
	// LabelOutcomes overrides the outcome per label (default LabelCreated).
	LabelOutcomes map[string]domain.LabelOutcome
	LabelErrs     map[string]error
	// CreateErrs fails the n-th CreateIssue call (1-based).
	CreateErrs map[int]error
	Labels     map[string]string
	Created    []domain.IssueRecord
	Attempts   int
}

// NewMockTracker creates a MockTracker with initialized maps.
func NewMockTracker() *MockTracker {
	return &MockTracker{
		LabelOutcomes: make(map[string]domain.LabelOutcome),
		LabelErrs:     make(map[string]error),
		CreateErrs:    make(map[int]error),
		Labels:        make(map[string]string),
	}
}

// CheckAvailable returns AvailableErr.
func (m *MockTracker) CheckAvailable(_ context.Context) error {
	return m.AvailableErr
}

// CheckAuth returns AuthErr.
func (m *MockTracker) CheckAuth(_ context.Context) error {
	return m.AuthErr
}

// UpsertLabel records the label color.
func (m *MockTracker) UpsertLabel(_ context.Context, name, color string) (domain.LabelOutcome, error) {
	if err := m.LabelErrs[name]; err != nil {
		return domain.LabelFailed, err
	}
	outcome := domain.LabelCreated
	if _, exists := m.Labels[name]; exists {
		outcome = domain.LabelExisted
	}
	if o, ok := m.LabelOutcomes[name]; ok {
		outcome = o
	}
	m.Labels[name] = color
	return outcome, nil
}

// CreateIssue records the record unless the attempt is configured to fail.
func (m *MockTracker) CreateIssue(_ context.Context, record domain.IssueRecord) (string, error) {
	m.Attempts++
	if err := m.CreateErrs[m.Attempts]; err != nil {
		return "", err
	}
	m.Created = append(m.Created, record)
	return fmt.Sprintf("https://example.com/issues/%d", len(m.Created)), nil
}

// LabelEvent is a LabelResult call captured by MockReporter.
type LabelEvent struct {
	Err     error
	Name    string
	Outcome domain.LabelOutcome
}

// IssueEvent is an IssueResult call captured by MockReporter.
type IssueEvent struct {
	Err   error
	Ref   string
	Index int
}

// MockReporter is a test double for domain.Reporter.
type MockReporter struct {
	SnapshotPath string
	Planned      []string
	Labels       []LabelEvent
	Started      []string
	Issues       []IssueEvent
	ParsedCount  int
	Total        int
}

// Parsed records the count and snapshot path.
func (m *MockReporter) Parsed(count int, snapshotPath string) {
	m.ParsedCount = count
	m.SnapshotPath = snapshotPath
}

// LabelsPlanned records the planned labels.
func (m *MockReporter) LabelsPlanned(labels []string) {
	m.Planned = labels
}

// IssuesPlanned records the total.
func (m *MockReporter) IssuesPlanned(total int) {
	m.Total = total
}

// LabelResult records the event.
func (m *MockReporter) LabelResult(name string, outcome domain.LabelOutcome, err error) {
	m.Labels = append(m.Labels, LabelEvent{Name: name, Outcome: outcome, Err: err})
}

// IssueStarted records the title.
func (m *MockReporter) IssueStarted(_, _ int, title string) {
	m.Started = append(m.Started, title)
}

// IssueResult records the event.
func (m *MockReporter) IssueResult(index int, ref string, err error) {
	m.Issues = append(m.Issues, IssueEvent{Index: index, Ref: ref, Err: err})
}

// MockSnapshotWriter is a test double for domain.SnapshotWriter.
type MockSnapshotWriter struct {
	Err     error
	Path    string
	Records []domain.IssueRecord
	Writes  int
}

// Write records the snapshot.
func (m *MockSnapshotWriter) Write(path string, records []domain.IssueRecord) error {
	m.Writes++
	if m.Err != nil {
		return m.Err
	}
	m.Path = path
	m.Records = records
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// NewMockConfigLoader creates a MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Global     domain.ConfigInfo
	Repo       domain.ConfigInfo
	InitGlobal bool
	InitRepo   bool
}

// GetRepoConfigInfo returns Repo.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo { return m.Repo }

// GetGlobalConfigInfo returns Global.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.Global }

// InitRepoConfig records the call.
func (m *MockConfigManager) InitRepoConfig(_ *domain.Config) error {
	m.InitRepo = true
	return m.InitErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobal = true
	return m.InitErr
}

// MockRemoteResolver is a test double for domain.RemoteResolver.
type MockRemoteResolver struct {
	URLs map[string]string
	Err  error
}

// RemoteURL returns the URL registered for name.
func (m *MockRemoteResolver) RemoteURL(name string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	u, ok := m.URLs[name]
	if !ok {
		return "", fmt.Errorf("remote %q not found", name)
	}
	return u, nil
}

// LogEntry is a call captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	ItemID   int
}

// MockLogger is a test double for domain.Logger that records every entry.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) Info(itemID int, category, msg string) { m.add("INFO", itemID, category, msg) }
func (m *MockLogger) Debug(itemID int, category, msg string) { m.add("DEBUG", itemID, category, msg) }
func (m *MockLogger) Warn(itemID int, category, msg string) { m.add("WARN", itemID, category, msg) }
func (m *MockLogger) Error(itemID int, category, msg string) { m.add("ERROR", itemID, category, msg) }

func (m *MockLogger) add(level string, itemID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, ItemID: itemID, Category: category, Msg: msg})
}

// Categories returns the category of each entry, in order.
func (m *MockLogger) Categories() []string {
	out := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		out = append(out, e.Category)
	}
	return out
}
