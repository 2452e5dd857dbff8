package sync

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"leadsync/internal/domain/contact"
)

// MockContactRepository is a mock implementation of contact.Repository for testing
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) List(ctx context.Context, ownerID int) ([]contact.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactRepository) Get(ctx context.Context, ownerID, contactID int) (*contact.Contact, error) {
	args := m.Called(ctx, ownerID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Contact), args.Error(1)
}

func (m *MockContactRepository) GetByLocalID(ctx context.Context, ownerID int, localID string) (*contact.Contact, error) {
	args := m.Called(ctx, ownerID, localID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, c *contact.Contact) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) SoftDelete(ctx context.Context, ownerID, contactID int) error {
	args := m.Called(ctx, ownerID, contactID)
	return args.Error(0)
}

func (m *MockContactRepository) Search(ctx context.Context, ownerID int, criteria contact.SearchCriteria) ([]contact.Contact, error) {
	args := m.Called(ctx, ownerID, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactRepository) GetModifiedSince(ctx context.Context, ownerID int, since time.Time) ([]contact.Contact, error) {
	args := m.Called(ctx, ownerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactRepository) SetLocalID(ctx context.Context, ownerID, contactID int, localID string) error {
	args := m.Called(ctx, ownerID, contactID, localID)
	return args.Error(0)
}

func (m *MockContactRepository) LocalIDMap(ctx context.Context, ownerID int) (map[string]int, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockContactRepository) MaxUpdatedAt(ctx context.Context, ownerID int) (*time.Time, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

// MockSessionRepository is a mock implementation of SessionRepository for testing
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) UpdateProgress(ctx context.Context, sessionID string, processed int, currentStep string) error {
	args := m.Called(ctx, sessionID, processed, currentStep)
	return args.Error(0)
}

func (m *MockSessionRepository) CompleteSession(ctx context.Context, session *Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetSession(ctx context.Context, ownerID int, sessionID string) (*Session, error) {
	args := m.Called(ctx, ownerID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepository) ListSessions(ctx context.Context, ownerID, limit int) ([]Session, error) {
	args := m.Called(ctx, ownerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
