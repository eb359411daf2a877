package usecase

import (
	"context"

	"github.com/runoshun/backlog/internal/domain"
)

// CheckTracker verifies the tracker is usable before anything is published.
type CheckTracker struct {
	tracker domain.Tracker
	logger  domain.Logger
}

// NewCheckTracker creates a new CheckTracker use case.
func NewCheckTracker(tracker domain.Tracker, logger domain.Logger) *CheckTracker {
	return &CheckTracker{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute runs the availability check, then the authentication check.
// The first failure is returned unchanged.
func (uc *CheckTracker) Execute(ctx context.Context) error {
	if err := uc.tracker.CheckAvailable(ctx); err != nil {
		uc.logError(err)
		return err
	}
	if err := uc.tracker.CheckAuth(ctx); err != nil {
		uc.logError(err)
		return err
	}
	return nil
}

func (uc *CheckTracker) logError(err error) {
	uc.logger.Error(0, "preflight", err.Error())
}
