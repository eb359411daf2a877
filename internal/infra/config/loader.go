// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/backlog/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding .backlog.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/backlog)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (repo + global).
// Repository config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.load(true)
}

// LoadGlobal returns the defaults merged with the global configuration only.
// A missing global file yields the defaults.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	return l.load(false)
}

func (l *Loader) load(withRepo bool) (*domain.Config, error) {
	paths := make([]string, 0, 2)
	if l.globalConfDir != "" {
		paths = append(paths, filepath.Join(l.globalConfDir, domain.ConfigFileName))
	}
	if withRepo {
		paths = append(paths, domain.RepoConfigPath(l.workDir))
	}

	// Merge: default <- global <- repo (later takes precedence)
	base := domain.NewDefaultConfig()
	for _, path := range paths {
		cfg, err := l.loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, cfg)
	}

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return base, nil
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail the load; they are reported as warnings.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&cfg)
	if err == nil {
		return &cfg, nil
	}

	var strictErr *toml.StrictMissingError
	if !errors.As(err, &strictErr) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg = domain.Config{}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, e := range strictErr.Errors {
		cfg.Warnings = append(cfg.Warnings,
			fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), strings.Join(e.Key(), ".")))
	}
	return &cfg, nil
}

// mergeConfigs returns base with the non-empty values of override applied.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Input:    base.Input,
		Tracker:  base.Tracker,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
		Labels: domain.LabelsConfig{
			Colors:       maps.Clone(base.Labels.Colors),
			DefaultColor: base.Labels.DefaultColor,
		},
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Input.File != "" {
		result.Input.File = override.Input.File
	}
	if override.Input.Snapshot != "" {
		result.Input.Snapshot = override.Input.Snapshot
	}
	if override.Tracker.Backend != "" {
		result.Tracker.Backend = override.Tracker.Backend
	}
	if override.Tracker.Repo != "" {
		result.Tracker.Repo = override.Tracker.Repo
	}
	if override.Tracker.GitLabURL != "" {
		result.Tracker.GitLabURL = override.Tracker.GitLabURL
	}
	if result.Labels.Colors == nil {
		result.Labels.Colors = make(map[string]string)
	}
	maps.Copy(result.Labels.Colors, override.Labels.Colors)
	if override.Labels.DefaultColor != "" {
		result.Labels.DefaultColor = override.Labels.DefaultColor
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.File != "" {
		result.Log.File = override.Log.File
	}

	return result
}
