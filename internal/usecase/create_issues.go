package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/backlog/internal/domain"
)

// CreateIssuesInput contains the parameters for creating issues.
type CreateIssuesInput struct {
	Reporter domain.Reporter // Optional progress sink
	Records  []domain.IssueRecord
}

// IssueResult is the outcome for one record.
type IssueResult struct {
	Err   error
	Title string
	Ref   string
}

// CreateIssuesOutput contains per-record results and counts.
type CreateIssuesOutput struct {
	Results []IssueResult
	Created int
	Failed  int
}

// CreateIssues creates one tracker issue per record, in order.
// Each record gets exactly one attempt; a failure is counted and the loop
// moves on. Nothing is rolled back.
type CreateIssues struct {
	tracker domain.Tracker
	logger  domain.Logger
}

// NewCreateIssues creates a new CreateIssues use case.
func NewCreateIssues(tracker domain.Tracker, logger domain.Logger) *CreateIssues {
	return &CreateIssues{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute creates the issues.
func (uc *CreateIssues) Execute(ctx context.Context, in CreateIssuesInput) (*CreateIssuesOutput, error) {
	total := len(in.Records)
	out := &CreateIssuesOutput{
		Results: make([]IssueResult, 0, total),
	}

	if in.Reporter != nil {
		in.Reporter.IssuesPlanned(total)
	}

	for i, record := range in.Records {
		index := i + 1
		if in.Reporter != nil {
			in.Reporter.IssueStarted(index, total, record.Title)
		}

		ref, err := uc.createOne(ctx, record)
		if err != nil {
			out.Failed++
			uc.logger.Error(index, "issue", fmt.Sprintf("%q: %v", record.Title, err))
		} else {
			out.Created++
			uc.logger.Info(index, "issue", fmt.Sprintf("%q: created %s", record.Title, ref))
		}
		out.Results = append(out.Results, IssueResult{Title: record.Title, Ref: ref, Err: err})

		if in.Reporter != nil {
			in.Reporter.IssueResult(index, ref, err)
		}
	}

	return out, nil
}

func (uc *CreateIssues) createOne(ctx context.Context, record domain.IssueRecord) (string, error) {
	if err := record.Validate(); err != nil {
		return "", err
	}
	return uc.tracker.CreateIssue(ctx, record)
}
