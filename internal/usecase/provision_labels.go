package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/backlog/internal/domain"
)

// ProvisionLabelsInput contains the parameters for label provisioning.
type ProvisionLabelsInput struct {
	Reporter domain.Reporter // Optional progress sink
	Labels   []string        // Labels to provision, in order
	Palette  domain.LabelPalette
}

// LabelResult is the outcome for one label.
type LabelResult struct {
	Err     error
	Name    string
	Color   string
	Outcome domain.LabelOutcome
}

// ProvisionLabelsOutput contains per-label results and counts.
type ProvisionLabelsOutput struct {
	Results []LabelResult
	Created int
	Existed int
	Failed  int
}

// ProvisionLabels makes sure every label exists on the tracker.
// Failures are reported per label and never stop the loop.
type ProvisionLabels struct {
	tracker domain.Tracker
	logger  domain.Logger
}

// NewProvisionLabels creates a new ProvisionLabels use case.
func NewProvisionLabels(tracker domain.Tracker, logger domain.Logger) *ProvisionLabels {
	return &ProvisionLabels{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute upserts each label with its palette color.
func (uc *ProvisionLabels) Execute(ctx context.Context, in ProvisionLabelsInput) (*ProvisionLabelsOutput, error) {
	out := &ProvisionLabelsOutput{
		Results: make([]LabelResult, 0, len(in.Labels)),
	}

	if in.Reporter != nil {
		in.Reporter.LabelsPlanned(in.Labels)
	}

	for _, name := range in.Labels {
		color := in.Palette.ColorFor(name)
		outcome, err := uc.tracker.UpsertLabel(ctx, name, color)
		if err != nil {
			outcome = domain.LabelFailed
		}

		switch outcome {
		case domain.LabelCreated:
			out.Created++
		case domain.LabelExisted:
			out.Existed++
		default:
			out.Failed++
		}
		out.Results = append(out.Results, LabelResult{Name: name, Color: color, Outcome: outcome, Err: err})

		if err != nil {
			uc.logger.Warn(0, "label", fmt.Sprintf("%s: %v", name, err))
		} else {
			uc.logger.Info(0, "label", fmt.Sprintf("%s (#%s): %s", name, color, outcome))
		}
		if in.Reporter != nil {
			in.Reporter.LabelResult(name, outcome, err)
		}
	}

	return out, nil
}
