// Package cli provides the command-line interface for backlog.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/backlog/internal/app"
	"github.com/spf13/cobra"
)

// ErrReported is returned when a command has already printed its failure.
// main exits non-zero without printing it again.
var ErrReported = errors.New("failure already reported")

// Command group IDs.
const (
	groupPublish = "publish"
	groupSetup   = "setup"
)

// NewRootCommand creates the root command for backlog.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var logFile, logLevel string

	root := &cobra.Command{
		Use:   "backlog",
		Short: "Import a markdown backlog into an issue tracker",
		Long: `backlog parses a markdown backlog document into issue records and
publishes them to an issue tracker: labels first, then one issue per record.

Records are separated by horizontal rules (---). Each record needs a title line
such as "## Issue #12: Add login page" and may carry **Labels:**,
**Description:**, **Acceptance Criteria:** and **Files to Modify:** sections.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			c.ConfigureLogging(logFile, logLevel)

			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logFile, "log-file", "", "Append a run log to this file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddGroup(
		&cobra.Group{ID: groupPublish, Title: "Publishing:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupPublish

	parseCmd := newParseCommand(c)
	parseCmd.GroupID = groupPublish

	labelsCmd := newLabelsCommand(c)
	labelsCmd.GroupID = groupPublish

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		importCmd,
		parseCmd,
		labelsCmd,
		configCmd,
	)

	return root
}
