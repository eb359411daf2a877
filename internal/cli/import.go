package cli

import (
	"fmt"

	"github.com/runoshun/backlog/internal/app"
	"github.com/runoshun/backlog/internal/domain"
	"github.com/runoshun/backlog/internal/usecase"
	"github.com/spf13/cobra"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		tracker    trackerFlags
		snapshot   string
		noSnapshot bool
		dryRun     bool
		skipLabels bool
	}

	cmd := &cobra.Command{
		Use:   "import [FILE]",
		Short: "Create labels and issues from a backlog document",
		Long: `Parse a markdown backlog document and publish it to the tracker.

Phases run in order:
  1. Parse FILE (default from [input] file, ISSUES.md) and write the snapshot
  2. Check the tracker is installed and authenticated
  3. Create every label used by the records (existing labels are updated)
  4. Create one issue per record, in document order

A failed preflight check stops the run before anything is published.
A failed label or issue is reported and the run continues.`,
		Example: `  backlog import
  backlog import docs/BACKLOG.md --repo octo/app
  backlog import --dry-run --snapshot issues.yaml
  backlog import --backend gitlab --repo group/project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath(c, args)
			content, err := readInput(path)
			if err != nil {
				return err
			}

			snapshotPath := opts.snapshot
			if snapshotPath == "" {
				snapshotPath = c.AppConfig.Input.Snapshot
			}
			if opts.noSnapshot {
				snapshotPath = ""
			}

			var tracker domain.Tracker
			if !opts.dryRun {
				tracker, err = c.Tracker(cmd.Context(), opts.tracker.options())
				if err != nil {
					return err
				}
			}

			rep := newConsoleReporter(cmd.OutOrStdout())
			rep.Parsing(path)

			out, err := c.ImportIssuesUseCase(tracker).Execute(cmd.Context(), usecase.ImportIssuesInput{
				Content:      content,
				SnapshotPath: snapshotPath,
				Palette:      c.AppConfig.Palette(),
				Reporter:     rep,
				DryRun:       opts.dryRun,
				SkipLabels:   opts.skipLabels,
			})
			if err != nil {
				return reportPreflight(rep, err)
			}

			if opts.dryRun {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nDry run: no labels or issues were created")
				return nil
			}

			rep.Done(out.Issues.Created, out.Issues.Failed)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "Snapshot path (.json or .yaml), overrides [input] snapshot")
	cmd.Flags().BoolVar(&opts.noSnapshot, "no-snapshot", false, "Do not write a snapshot")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and write the snapshot only")
	cmd.Flags().BoolVar(&opts.skipLabels, "skip-labels", false, "Do not create labels")
	addTrackerFlags(cmd, &opts.tracker)

	return cmd
}

func addTrackerFlags(cmd *cobra.Command, f *trackerFlags) {
	cmd.Flags().StringVar(&f.backend, "backend", "", "Tracker backend: gh, github or gitlab")
	cmd.Flags().StringVar(&f.repo, "repo", "", "Target repository (owner/name or URL), defaults to the origin remote")
}
