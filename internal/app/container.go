// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/backlog/internal/domain"
	"github.com/runoshun/backlog/internal/infra/config"
	"github.com/runoshun/backlog/internal/infra/executor"
	"github.com/runoshun/backlog/internal/infra/ghcli"
	"github.com/runoshun/backlog/internal/infra/git"
	"github.com/runoshun/backlog/internal/infra/githubapi"
	"github.com/runoshun/backlog/internal/infra/gitlabapi"
	"github.com/runoshun/backlog/internal/infra/logging"
	"github.com/runoshun/backlog/internal/infra/snapshot"
	"github.com/runoshun/backlog/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the command runs in
}

// TrackerOptions selects the tracker backend and target repository.
// Empty fields fall back to the loaded configuration.
type TrackerOptions struct {
	Backend string
	Repo    string
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Executor      domain.CommandExecutor
	Remotes       domain.RemoteResolver
	Snapshots     domain.SnapshotWriter
	Logger        domain.Logger

	// Getenv reads tracker tokens. Defaults to os.Getenv.
	Getenv func(string) string

	// AppConfig is the merged configuration.
	AppConfig *domain.Config

	// tracker overrides the backend factory (tests).
	tracker domain.Tracker
	logger  *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// The configuration is loaded and validated here.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(appConfig.Log.File, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Executor:      executor.NewClient(),
		Remotes:       git.NewClient(dir),
		Snapshots:     snapshot.New(),
		Logger:        logger,
		Getenv:        os.Getenv,
		AppConfig:     appConfig,
		logger:        logger,
		Config:        Config{WorkDir: dir},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// tracker is returned by Tracker regardless of the requested backend.
// A nil logger is replaced by a disabled file logger.
func NewWithDeps(cfg Config, appConfig *domain.Config, tracker domain.Tracker, snapshots domain.SnapshotWriter, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	c := &Container{
		Snapshots: snapshots,
		Logger:    logger,
		Getenv:    os.Getenv,
		AppConfig: appConfig,
		tracker:   tracker,
		Config:    cfg,
	}
	if logger == nil {
		c.logger = logging.New("", logging.ParseLevel(appConfig.Log.Level))
		c.Logger = c.logger
	}
	return c
}

// ConfigureLogging replaces the file logger. Empty arguments keep the
// configured values.
func (c *Container) ConfigureLogging(file, level string) {
	if file == "" && level == "" {
		return
	}
	if file == "" {
		file = c.AppConfig.Log.File
	}
	if level == "" {
		level = c.AppConfig.Log.Level
	}
	if c.logger != nil {
		_ = c.logger.Close()
	}
	c.logger = logging.New(file, logging.ParseLevel(level))
	c.Logger = c.logger
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.logger == nil {
		return nil
	}
	return c.logger.Close()
}

// Tracker builds the tracker for the selected backend.
func (c *Container) Tracker(ctx context.Context, opts TrackerOptions) (domain.Tracker, error) {
	if c.tracker != nil {
		return c.tracker, nil
	}

	backend := opts.Backend
	if backend == "" {
		backend = c.AppConfig.Tracker.Backend
	}
	explicit := opts.Repo
	if explicit == "" {
		explicit = c.AppConfig.Tracker.Repo
	}

	repo, err := git.ResolveRepo(explicit, c.Remotes)
	if err != nil {
		// An explicit but malformed reference is a usage error. A missing
		// remote is left to the backend: gh infers the repository itself
		// and the API backends report it during preflight.
		if explicit != "" || (!errors.Is(err, domain.ErrNoRepository) && !errors.Is(err, domain.ErrInvalidRepoRef)) {
			return nil, err
		}
		repo = domain.RepoRef{}
	}

	switch backend {
	case domain.BackendGHCLI, "":
		return ghcli.New(c.Executor, repo), nil
	case domain.BackendGitHub:
		return githubapi.New(ctx, c.token("GITHUB_TOKEN", "GH_TOKEN"), repo)
	case domain.BackendGitLab:
		return gitlabapi.New(c.token("GITLAB_TOKEN"), c.AppConfig.Tracker.GitLabURL, repo)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
}

func (c *Container) token(names ...string) string {
	for _, name := range names {
		if v := c.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// UseCase factory methods

// ParseIssuesUseCase returns a new ParseIssues use case.
func (c *Container) ParseIssuesUseCase() *usecase.ParseIssues {
	return usecase.NewParseIssues(c.Snapshots, c.Logger)
}

// CheckTrackerUseCase returns a new CheckTracker use case.
func (c *Container) CheckTrackerUseCase(tracker domain.Tracker) *usecase.CheckTracker {
	return usecase.NewCheckTracker(tracker, c.Logger)
}

// ProvisionLabelsUseCase returns a new ProvisionLabels use case.
func (c *Container) ProvisionLabelsUseCase(tracker domain.Tracker) *usecase.ProvisionLabels {
	return usecase.NewProvisionLabels(tracker, c.Logger)
}

// ImportIssuesUseCase returns a new ImportIssues use case.
func (c *Container) ImportIssuesUseCase(tracker domain.Tracker) *usecase.ImportIssues {
	return usecase.NewImportIssues(tracker, c.Snapshots, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}
