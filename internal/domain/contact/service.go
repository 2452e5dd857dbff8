package contact

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Service defines the business logic for the non-sync contact API paths.
// Contacts created here carry no local id until a client claims one
// through the sync mapping flow.
type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, ownerID int) (ListResponse, error)
	Create(ctx context.Context, ownerID int, payload Payload) (int, error)
	Find(ctx context.Context, ownerID, contactID int) (*Contact, error)
	Update(ctx context.Context, ownerID, contactID int, payload Payload) (*Contact, error)
	SoftDelete(ctx context.Context, ownerID, contactID int) error
	Search(ctx context.Context, ownerID int, criteria SearchCriteria) ([]Contact, error)
	GetModifiedSince(ctx context.Context, ownerID int, since time.Time) ([]Contact, error)
}

type ListResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
}

// NewService creates a new contact service
func NewService(repo Repository, validator Validator, log *slog.Logger) Servicer {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "contact_service"),
	}
}

// List returns all live contacts for an owner
func (s *Service) List(ctx context.Context, ownerID int) (ListResponse, error) {
	contacts, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list contacts", "owner_id", ownerID, "error", err)
		return ListResponse{}, fmt.Errorf("list contacts: %w", err)
	}

	return ListResponse{
		Contacts: contacts,
		Total:    len(contacts),
	}, nil
}

// Create inserts a new contact from a validated payload
func (s *Service) Create(ctx context.Context, ownerID int, payload Payload) (int, error) {
	if err := s.validator.ValidateCreate(payload); err != nil {
		return 0, err
	}

	c := &Contact{OwnerID: ownerID}
	payload.ApplyTo(c)

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		s.log.Error("failed to create contact", "owner_id", ownerID, "error", err)
		return 0, fmt.Errorf("create contact: %w", err)
	}

	return id, nil
}

// Find returns a single contact by id
func (s *Service) Find(ctx context.Context, ownerID, contactID int) (*Contact, error) {
	c, err := s.repo.Get(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Update applies a partial payload to an existing contact
func (s *Service) Update(ctx context.Context, ownerID, contactID int, payload Payload) (*Contact, error) {
	if err := s.validator.ValidateUpdate(payload); err != nil {
		return nil, err
	}

	c, err := s.repo.Get(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	payload.ApplyTo(c)

	if err := s.repo.Update(ctx, c); err != nil {
		s.log.Error("failed to update contact",
			"contact_id", contactID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("update contact: %w", err)
	}

	return c, nil
}

// SoftDelete marks a contact as deleted
func (s *Service) SoftDelete(ctx context.Context, ownerID, contactID int) error {
	if err := s.repo.SoftDelete(ctx, ownerID, contactID); err != nil {
		s.log.Error("failed to soft delete contact",
			"contact_id", contactID, "owner_id", ownerID, "error", err)
		return err
	}

	return nil
}

// Search filters contacts by criteria
func (s *Service) Search(ctx context.Context, ownerID int, criteria SearchCriteria) ([]Contact, error) {
	if criteria.Limit <= 0 {
		criteria.Limit = 100
	}

	contacts, err := s.repo.Search(ctx, ownerID, criteria)
	if err != nil {
		s.log.Error("failed to search contacts", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("search contacts: %w", err)
	}

	return contacts, nil
}

// GetModifiedSince returns contacts changed after the given time
func (s *Service) GetModifiedSince(ctx context.Context, ownerID int, since time.Time) ([]Contact, error) {
	contacts, err := s.repo.GetModifiedSince(ctx, ownerID, since)
	if err != nil {
		s.log.Error("failed to get modified contacts", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get modified contacts: %w", err)
	}

	return contacts, nil
}
