package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/backlog/internal/domain"
)

// ImportIssuesInput contains the parameters for a full import run.
// Fields are ordered to minimize memory padding.
type ImportIssuesInput struct {
	Reporter     domain.Reporter
	Content      string
	SnapshotPath string
	Palette      domain.LabelPalette
	DryRun       bool // Parse and snapshot only
	SkipLabels   bool // Do not provision labels
}

// ImportIssuesOutput contains the results of every phase that ran.
type ImportIssuesOutput struct {
	Parse  *ParseIssuesOutput
	Labels *ProvisionLabelsOutput // nil if skipped
	Issues *CreateIssuesOutput    // nil on dry run
	// AllLabels is the sorted union of labels across records.
	AllLabels []string
}

// ImportIssues runs parse, snapshot, preflight, label provisioning and issue
// creation in sequence.
type ImportIssues struct {
	parse     *ParseIssues
	check     *CheckTracker
	provision *ProvisionLabels
	create    *CreateIssues
	logger    domain.Logger
}

// NewImportIssues creates a new ImportIssues use case.
func NewImportIssues(
	tracker domain.Tracker,
	snapshots domain.SnapshotWriter,
	logger domain.Logger,
) *ImportIssues {
	return &ImportIssues{
		parse:     NewParseIssues(snapshots, logger),
		check:     NewCheckTracker(tracker, logger),
		provision: NewProvisionLabels(tracker, logger),
		create:    NewCreateIssues(tracker, logger),
		logger:    logger,
	}
}

// Execute runs the import. Only parse, snapshot and preflight errors are
// returned; per-label and per-issue failures are part of the output.
// On a preflight error the parse output is still returned.
func (uc *ImportIssues) Execute(ctx context.Context, in ImportIssuesInput) (*ImportIssuesOutput, error) {
	parsed, err := uc.parse.Execute(ctx, ParseIssuesInput{
		Content:      in.Content,
		SnapshotPath: in.SnapshotPath,
	})
	if err != nil {
		return nil, err
	}

	if in.Reporter != nil {
		in.Reporter.Parsed(len(parsed.Records), parsed.SnapshotPath)
	}

	out := &ImportIssuesOutput{
		Parse:     parsed,
		AllLabels: domain.AllLabels(parsed.Records),
	}
	if in.DryRun {
		return out, nil
	}

	if err := uc.check.Execute(ctx); err != nil {
		return out, err
	}

	if !in.SkipLabels {
		out.Labels, err = uc.provision.Execute(ctx, ProvisionLabelsInput{
			Labels:   out.AllLabels,
			Palette:  in.Palette,
			Reporter: in.Reporter,
		})
		if err != nil {
			return out, fmt.Errorf("provision labels: %w", err)
		}
	}

	out.Issues, err = uc.create.Execute(ctx, CreateIssuesInput{
		Records:  parsed.Records,
		Reporter: in.Reporter,
	})
	if err != nil {
		return out, fmt.Errorf("create issues: %w", err)
	}

	uc.logger.Info(0, "import", fmt.Sprintf("done: created %d, failed %d", out.Issues.Created, out.Issues.Failed))
	return out, nil
}
