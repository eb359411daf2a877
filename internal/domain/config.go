package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"text/template"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Input    InputConfig   `toml:"input"`
	Tracker  TrackerConfig `toml:"tracker"`
	Labels   LabelsConfig  `toml:"labels"`
	Log      LogConfig     `toml:"log"`
}

// InputConfig holds settings from the [input] section.
type InputConfig struct {
	File     string `toml:"file,omitempty"`     // Backlog document to import
	Snapshot string `toml:"snapshot,omitempty"` // Audit snapshot path
}

// TrackerConfig holds settings from the [tracker] section.
type TrackerConfig struct {
	Backend   string `toml:"backend,omitempty"`    // gh (default), github or gitlab
	Repo      string `toml:"repo,omitempty"`       // owner/name; empty = origin remote
	GitLabURL string `toml:"gitlab_url,omitempty"` // GitLab instance URL
}

// LabelsConfig holds settings from the [labels] section.
type LabelsConfig struct {
	Colors       map[string]string `toml:"colors,omitempty"`
	DefaultColor string            `toml:"default_color,omitempty"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path; empty disables logging
}

// Tracker backends.
const (
	BackendGHCLI  = "gh"
	BackendGitHub = "github"
	BackendGitLab = "gitlab"
)

// Default configuration values.
const (
	DefaultInputFile    = "ISSUES.md"
	DefaultSnapshotFile = "issues.json"
	DefaultLogLevel     = "info"
	DefaultGitLabURL    = "https://gitlab.com"
)

// Configuration file names.
const (
	AppDirName         = "backlog"       // Directory name under the user config home
	ConfigFileName     = "config.toml"   // Global config file name
	RepoConfigFileName = ".backlog.toml" // Config file name in the working directory
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// RepoConfigPath returns the config path for a working directory.
func RepoConfigPath(dir string) string {
	return filepath.Join(dir, RepoConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	palette := DefaultLabelPalette()
	return &Config{
		Input: InputConfig{
			File:     DefaultInputFile,
			Snapshot: DefaultSnapshotFile,
		},
		Tracker: TrackerConfig{
			Backend:   BackendGHCLI,
			GitLabURL: DefaultGitLabURL,
		},
		Labels: LabelsConfig{
			Colors:       palette.Colors,
			DefaultColor: palette.Default,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Palette returns the label palette described by the [labels] section.
func (c *Config) Palette() LabelPalette {
	return DefaultLabelPalette().Merge(LabelPalette{
		Colors:  c.Labels.Colors,
		Default: c.Labels.DefaultColor,
	})
}

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// Validate checks the configuration values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Tracker),
		validation.Field(&c.Labels),
		validation.Field(&c.Log),
	)
}

// Validate checks the [tracker] section.
func (t TrackerConfig) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Backend, validation.In(BackendGHCLI, BackendGitHub, BackendGitLab).
			Error("must be one of gh, github, gitlab")),
		validation.Field(&t.Repo, validation.By(func(value any) error {
			s, _ := value.(string)
			if s == "" {
				return nil
			}
			_, err := ParseRepoRef(s)
			return err
		})),
	)
}

// Validate checks the [labels] section.
func (l LabelsConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Colors, validation.Each(validation.Match(hexColorPattern).
			Error("must be 6 hex digits without '#'"))),
		validation.Field(&l.DefaultColor, validation.Match(hexColorPattern).
			Error("must be 6 hex digits without '#'")),
	)
}

// Validate checks the [log] section.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "error")),
	)
}

// templateData holds all data for rendering the config template.
type templateData struct {
	InputFile    string
	Snapshot     string
	Backend      string
	GitLabURL    string
	DefaultColor string
	LogLevel     string
	Colors       []labelColor
}

type labelColor struct {
	Name  string
	Color string
}

// RenderConfigTemplate renders a commented config file from cfg.
func RenderConfigTemplate(cfg *Config) string {
	names := make([]string, 0, len(cfg.Labels.Colors))
	for name := range cfg.Labels.Colors {
		names = append(names, name)
	}
	slices.Sort(names)

	colors := make([]labelColor, 0, len(names))
	for _, name := range names {
		colors = append(colors, labelColor{Name: name, Color: cfg.Labels.Colors[name]})
	}

	data := templateData{
		InputFile:    cfg.Input.File,
		Snapshot:     cfg.Input.Snapshot,
		Backend:      cfg.Tracker.Backend,
		GitLabURL:    cfg.Tracker.GitLabURL,
		DefaultColor: cfg.Labels.DefaultColor,
		LogLevel:     cfg.Log.Level,
		Colors:       colors,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
