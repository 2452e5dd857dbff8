package sync

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadsync/internal/utils/logger"
)

func TestTracker_CreateSession(t *testing.T) {
	sessions := new(MockSessionRepository)
	tracker := NewTracker(sessions, logger.NewDiscard())

	sessions.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *Session) bool {
		return s.OwnerID == 7 && s.TotalOperations == 120 && s.Status == SessionInProgress && s.ID != ""
	})).Return(nil)

	session, err := tracker.CreateSession(context.Background(), 7, 120)

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, SessionInProgress, session.Status)
	assert.False(t, session.StartedAt.IsZero())
	sessions.AssertExpectations(t)
}

func TestTracker_CreateSession_RepoError(t *testing.T) {
	sessions := new(MockSessionRepository)
	tracker := NewTracker(sessions, logger.NewDiscard())

	sessions.On("CreateSession", mock.Anything, mock.Anything).Return(errors.New("db down"))

	session, err := tracker.CreateSession(context.Background(), 7, 10)

	assert.Nil(t, session)
	assert.ErrorContains(t, err, "db down")
}

func TestTracker_CompleteSession_Status(t *testing.T) {
	tests := []struct {
		name           string
		failed         int
		expectedStatus SessionStatus
	}{
		{name: "no failures completes", failed: 0, expectedStatus: SessionCompleted},
		{name: "any failure marks failed", failed: 1, expectedStatus: SessionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := new(MockSessionRepository)
			tracker := NewTracker(sessions, logger.NewDiscard())
			sessions.On("CompleteSession", mock.Anything, mock.Anything).Return(nil)

			session := &Session{ID: "s1", OwnerID: 7, Status: SessionInProgress, TotalOperations: 5}
			tracker.CompleteSession(context.Background(), session, 5-tt.failed-1, tt.failed, 1)

			assert.Equal(t, tt.expectedStatus, session.Status)
			assert.Equal(t, 5, session.ProcessedOperations)
			assert.NotNil(t, session.CompletedAt)
		})
	}
}

func TestTracker_UpdateProgress_SwallowsRepoError(t *testing.T) {
	sessions := new(MockSessionRepository)
	tracker := NewTracker(sessions, logger.NewDiscard())

	sessions.On("UpdateProgress", mock.Anything, "s1", 10, "halfway").Return(errors.New("db down"))

	session := &Session{ID: "s1", OwnerID: 7, Status: SessionInProgress}
	// Сбой записи прогресса не должен паниковать и не должен менять статус
	tracker.UpdateProgress(context.Background(), session, 10, "halfway")

	assert.Equal(t, 10, session.ProcessedOperations)
	assert.Equal(t, "halfway", session.CurrentStep)
	assert.Equal(t, SessionInProgress, session.Status)
}
