package contact

import (
	"fmt"
	"strings"
)

const (
	MaxNameLen     = 200
	MaxNotesLen    = 10000
	MaxInterests   = 50
	MaxInterestLen = 100
)

// Validator - интерфейс для валидации данных контакта
type Validator interface {
	ValidateCreate(payload Payload) error
	ValidateUpdate(payload Payload) error
}

type PayloadValidator struct {
	requireName bool
}

// NewPayloadValidator создает новый валидатор
func NewPayloadValidator() *PayloadValidator {
	return &PayloadValidator{
		requireName: true,
	}
}

// ValidateCreate валидирует данные для создания контакта
func (v *PayloadValidator) ValidateCreate(payload Payload) error {
	if v.requireName && (payload.Name == nil || strings.TrimSpace(*payload.Name) == "") {
		return fmt.Errorf("%w: name is required", ErrInvalidData)
	}

	return v.validateFields(payload)
}

// ValidateUpdate валидирует данные для обновления контакта
func (v *PayloadValidator) ValidateUpdate(payload Payload) error {
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return fmt.Errorf("%w: name cannot be cleared", ErrInvalidData)
	}

	return v.validateFields(payload)
}

func (v *PayloadValidator) validateFields(payload Payload) error {
	if payload.Name != nil && len(*payload.Name) > MaxNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidData, MaxNameLen)
	}

	if payload.Notes != nil && len(*payload.Notes) > MaxNotesLen {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidData, MaxNotesLen)
	}

	if payload.Email != nil && *payload.Email != "" {
		email := *payload.Email
		at := strings.Index(email, "@")
		if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
			return fmt.Errorf("%w: malformed email %q", ErrInvalidData, email)
		}
	}

	if len(payload.Interests) > MaxInterests {
		return fmt.Errorf("%w: at most %d interests allowed", ErrInvalidData, MaxInterests)
	}

	for _, interest := range payload.Interests {
		if strings.TrimSpace(interest) == "" {
			return fmt.Errorf("%w: empty interest", ErrInvalidData)
		}
		if len(interest) > MaxInterestLen {
			return fmt.Errorf("%w: interest must be at most %d characters", ErrInvalidData, MaxInterestLen)
		}
	}

	return nil
}
