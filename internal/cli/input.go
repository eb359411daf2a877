package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/backlog/internal/app"
	"github.com/runoshun/backlog/internal/domain"
)

// trackerFlags are shared by commands that talk to the tracker.
type trackerFlags struct {
	backend string
	repo    string
}

func (f trackerFlags) options() app.TrackerOptions {
	return app.TrackerOptions{Backend: f.backend, Repo: f.repo}
}

// inputPath returns the document path from args, config, or the default.
func inputPath(c *app.Container, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if c != nil && c.AppConfig.Input.File != "" {
		return c.AppConfig.Input.File
	}
	return domain.DefaultInputFile
}

// readInput reads the backlog document.
func readInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("backlog document not found: %s", path)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// reportPreflight prints err through rep and converts a preflight failure
// to ErrReported. Other errors are returned unchanged.
func reportPreflight(rep *consoleReporter, err error) error {
	var pe *domain.PreflightError
	if errors.As(err, &pe) {
		rep.Preflight(err)
		return ErrReported
	}
	return err
}
