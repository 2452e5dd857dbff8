package sync

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadsync/internal/app/server/api/http/middleware/owner"
	domain "leadsync/internal/domain/sync"
	"leadsync/internal/utils/logger"
)

// MockService is a mock implementation of sync.Servicer for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) ProcessBulkSync(ctx context.Context, ownerID int, req domain.BulkSyncRequest) (*domain.BulkSyncResponse, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BulkSyncResponse), args.Error(1)
}

func (m *MockService) ResolveConflict(ctx context.Context, ownerID int, req domain.ResolveConflictRequest) (*domain.Result, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Result), args.Error(1)
}

func (m *MockService) GetLastSyncTimestamp(ctx context.Context, ownerID int) (*time.Time, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockService) GetLocalIDMappings(ctx context.Context, ownerID int) (map[string]int, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockService) GetProgress(ctx context.Context, ownerID int, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, ownerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockService) GetHistory(ctx context.Context, ownerID int) ([]domain.Session, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

func ownerCtx(ownerID int) context.Context {
	return context.WithValue(context.Background(), owner.OwnerIDKey, ownerID)
}

func newTestHandler(service *MockService) *Handler {
	return NewHandler(service, logger.NewDiscard(), huma.Middlewares{})
}

func TestHandler_bulkSync_StatusMapping(t *testing.T) {
	tests := []struct {
		name           string
		response       *domain.BulkSyncResponse
		expectedStatus int
	}{
		{
			name:           "clean sync returns 200",
			response:       &domain.BulkSyncResponse{Success: true},
			expectedStatus: http.StatusOK,
		},
		{
			name: "conflicts return 409",
			response: &domain.BulkSyncResponse{
				Success:   true,
				Conflicts: []domain.Result{{LocalID: "L1", Status: domain.StatusConflict}},
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "errors return 500",
			response: &domain.BulkSyncResponse{
				Success: false,
				Errors:  []domain.Result{{LocalID: "L1", Status: domain.StatusError}},
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			handler := newTestHandler(service)
			service.On("ProcessBulkSync", mock.Anything, 7, mock.Anything).Return(tt.response, nil)

			input := &bulkSyncInput{Body: domain.BulkSyncRequest{
				Operations: []domain.Operation{{Action: domain.ActionDelete, LocalID: "L1"}},
			}}

			output, err := handler.bulkSync(ownerCtx(7), input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, output.Status)
		})
	}
}

func TestHandler_bulkSync_BatchRejected(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)
	service.On("ProcessBulkSync", mock.Anything, 7, mock.Anything).Return(nil, domain.ErrBatchTooLarge)

	output, err := handler.bulkSync(ownerCtx(7), &bulkSyncInput{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, output.Status)
	assert.False(t, output.Body.Success)
	assert.Contains(t, output.Body.Error, "batch")
}

func TestHandler_bulkSync_Unauthorized(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	_, err := handler.bulkSync(context.Background(), &bulkSyncInput{})

	assert.Error(t, err)
	service.AssertNotCalled(t, "ProcessBulkSync", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_resolveConflict(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	resolved := &domain.Result{LocalID: "L1", ServerID: 55, Status: domain.StatusSuccess}
	service.On("ResolveConflict", mock.Anything, 7, mock.MatchedBy(func(req domain.ResolveConflictRequest) bool {
		return req.LocalID == "L1" && req.Strategy == domain.StrategyMerge
	})).Return(resolved, nil)

	input := &resolveConflictInput{Body: domain.ResolveConflictRequest{
		LocalID:  "L1",
		Strategy: domain.StrategyMerge,
	}}

	output, err := handler.resolveConflict(ownerCtx(7), input)

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	assert.Equal(t, resolved, output.Body.Result)
}

func TestHandler_lastSync(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	ts := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	service.On("GetLastSyncTimestamp", mock.Anything, 7).Return(&ts, nil)

	output, err := handler.lastSync(ownerCtx(7), &lastSyncInput{})

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	assert.Equal(t, &ts, output.Body.LastSyncTimestamp)
}

func TestHandler_mappings_ServiceError(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	service.On("GetLocalIDMappings", mock.Anything, 7).Return(nil, errors.New("db down"))

	output, err := handler.mappings(ownerCtx(7), &mappingsInput{})

	require.NoError(t, err)
	assert.Equal(t, "Error", output.Body.Status)
	assert.Contains(t, output.Body.Error, "db down")
}

func TestHandler_getSession(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	session := &domain.Session{ID: "s1", OwnerID: 7, Status: domain.SessionCompleted}
	service.On("GetProgress", mock.Anything, 7, "s1").Return(session, nil)

	output, err := handler.getSession(ownerCtx(7), &getSessionInput{ID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	assert.Equal(t, session, output.Body.Session)
}

func TestHandler_listSessions(t *testing.T) {
	service := new(MockService)
	handler := newTestHandler(service)

	service.On("GetHistory", mock.Anything, 7).Return([]domain.Session{{ID: "s1"}, {ID: "s2"}}, nil)

	output, err := handler.listSessions(ownerCtx(7), &listSessionsInput{})

	require.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	assert.Len(t, output.Body.Sessions, 2)
}
