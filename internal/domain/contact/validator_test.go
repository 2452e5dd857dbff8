package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadValidator_ValidateCreate(t *testing.T) {
	v := NewPayloadValidator()

	tests := []struct {
		name        string
		payload     Payload
		wantErr     bool
		errContains string
	}{
		{
			name:    "minimal valid payload",
			payload: Payload{Name: strPtr("John Smith")},
			wantErr: false,
		},
		{
			name: "full valid payload",
			payload: Payload{
				Name:      strPtr("John Smith"),
				Title:     strPtr("CTO"),
				Company:   strPtr("Acme"),
				Email:     strPtr("john@acme.io"),
				Interests: []string{"golang", "databases"},
			},
			wantErr: false,
		},
		{
			name:        "missing name",
			payload:     Payload{Company: strPtr("Acme")},
			wantErr:     true,
			errContains: "name is required",
		},
		{
			name:        "whitespace name",
			payload:     Payload{Name: strPtr("   ")},
			wantErr:     true,
			errContains: "name is required",
		},
		{
			name:        "name too long",
			payload:     Payload{Name: strPtr(strings.Repeat("x", MaxNameLen+1))},
			wantErr:     true,
			errContains: "at most",
		},
		{
			name:        "notes too long",
			payload:     Payload{Name: strPtr("John"), Notes: strPtr(strings.Repeat("x", MaxNotesLen+1))},
			wantErr:     true,
			errContains: "notes",
		},
		{
			name:        "email without at",
			payload:     Payload{Name: strPtr("John"), Email: strPtr("john.acme.io")},
			wantErr:     true,
			errContains: "malformed email",
		},
		{
			name:        "email with trailing at",
			payload:     Payload{Name: strPtr("John"), Email: strPtr("john@")},
			wantErr:     true,
			errContains: "malformed email",
		},
		{
			name:        "email with double at",
			payload:     Payload{Name: strPtr("John"), Email: strPtr("john@@acme.io")},
			wantErr:     true,
			errContains: "malformed email",
		},
		{
			name:    "empty email is allowed",
			payload: Payload{Name: strPtr("John"), Email: strPtr("")},
			wantErr: false,
		},
		{
			name:        "too many interests",
			payload:     Payload{Name: strPtr("John"), Interests: make([]string, MaxInterests+1)},
			wantErr:     true,
			errContains: "interests",
		},
		{
			name:        "blank interest",
			payload:     Payload{Name: strPtr("John"), Interests: []string{"golang", " "}},
			wantErr:     true,
			errContains: "empty interest",
		},
		{
			name:        "interest too long",
			payload:     Payload{Name: strPtr("John"), Interests: []string{strings.Repeat("x", MaxInterestLen+1)}},
			wantErr:     true,
			errContains: "interest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreate(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidData)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPayloadValidator_ValidateUpdate(t *testing.T) {
	v := NewPayloadValidator()

	tests := []struct {
		name        string
		payload     Payload
		wantErr     bool
		errContains string
	}{
		{
			name:    "partial payload without name",
			payload: Payload{Title: strPtr("VP Sales")},
			wantErr: false,
		},
		{
			name:    "empty payload is a no-op update",
			payload: Payload{},
			wantErr: false,
		},
		{
			name:        "clearing name is forbidden",
			payload:     Payload{Name: strPtr("")},
			wantErr:     true,
			errContains: "name cannot be cleared",
		},
		{
			name:        "shared field rules still apply",
			payload:     Payload{Email: strPtr("nope")},
			wantErr:     true,
			errContains: "malformed email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateUpdate(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
