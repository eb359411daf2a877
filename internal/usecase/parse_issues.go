// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/backlog/internal/domain"
)

// ParseIssuesInput contains the parameters for parsing a backlog document.
type ParseIssuesInput struct {
	Content      string // Markdown backlog document
	SnapshotPath string // Where to write the audit snapshot ("" = skip)
}

// ParseIssuesOutput contains the parsed records.
type ParseIssuesOutput struct {
	Records      []domain.IssueRecord
	SnapshotPath string // Path actually written, empty if skipped
}

// ParseIssues parses a backlog document and writes the audit snapshot.
type ParseIssues struct {
	snapshots domain.SnapshotWriter
	logger    domain.Logger
}

// NewParseIssues creates a new ParseIssues use case.
func NewParseIssues(snapshots domain.SnapshotWriter, logger domain.Logger) *ParseIssues {
	return &ParseIssues{
		snapshots: snapshots,
		logger:    logger,
	}
}

// Execute parses the content. Blocks without a title are skipped silently.
func (uc *ParseIssues) Execute(_ context.Context, in ParseIssuesInput) (*ParseIssuesOutput, error) {
	records := domain.ParseIssueRecords(in.Content)
	uc.logger.Info(0, "parse", fmt.Sprintf("parsed %d issues", len(records)))

	out := &ParseIssuesOutput{Records: records}
	if in.SnapshotPath == "" || uc.snapshots == nil {
		return out, nil
	}

	if err := uc.snapshots.Write(in.SnapshotPath, records); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}
	out.SnapshotPath = in.SnapshotPath
	return out, nil
}
