package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/backlog/internal/domain"
	"github.com/runoshun/backlog/internal/testutil"
	"github.com/runoshun/backlog/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTracker_Execute(t *testing.T) {
	unavailable := &domain.PreflightError{Err: domain.ErrTrackerUnavailable, Hints: []string{"install it"}}
	unauthenticated := &domain.PreflightError{Err: domain.ErrTrackerUnauthenticated}

	tests := []struct {
		availableErr error
		authErr      error
		wantErr      error
		name         string
	}{
		{name: "both checks pass"},
		{name: "tool missing", availableErr: unavailable, authErr: unauthenticated, wantErr: domain.ErrTrackerUnavailable},
		{name: "not authenticated", authErr: unauthenticated, wantErr: domain.ErrTrackerUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := testutil.NewMockTracker()
			tracker.AvailableErr = tt.availableErr
			tracker.AuthErr = tt.authErr

			err := usecase.NewCheckTracker(tracker, &testutil.MockLogger{}).Execute(context.Background())

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			var pe *domain.PreflightError
			assert.True(t, errors.As(err, &pe))
		})
	}
}
