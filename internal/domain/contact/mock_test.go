package contact

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ownerID int) ([]Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Contact), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, ownerID, contactID int) (*Contact, error) {
	args := m.Called(ctx, ownerID, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockRepository) GetByLocalID(ctx context.Context, ownerID int, localID string) (*Contact, error) {
	args := m.Called(ctx, ownerID, localID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Contact), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *Contact) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c *Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) SoftDelete(ctx context.Context, ownerID, contactID int) error {
	args := m.Called(ctx, ownerID, contactID)
	return args.Error(0)
}

func (m *MockRepository) Search(ctx context.Context, ownerID int, criteria SearchCriteria) ([]Contact, error) {
	args := m.Called(ctx, ownerID, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Contact), args.Error(1)
}

func (m *MockRepository) GetModifiedSince(ctx context.Context, ownerID int, since time.Time) ([]Contact, error) {
	args := m.Called(ctx, ownerID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Contact), args.Error(1)
}

func (m *MockRepository) SetLocalID(ctx context.Context, ownerID, contactID int, localID string) error {
	args := m.Called(ctx, ownerID, contactID, localID)
	return args.Error(0)
}

func (m *MockRepository) LocalIDMap(ctx context.Context, ownerID int) (map[string]int, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockRepository) MaxUpdatedAt(ctx context.Context, ownerID int) (*time.Time, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
