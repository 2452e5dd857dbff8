package sync

import (
	"context"
)

// SessionRepository — интерфейс хранилища сессий синхронизации
type SessionRepository interface {
	CreateSession(ctx context.Context, session *Session) error
	UpdateProgress(ctx context.Context, sessionID string, processed int, currentStep string) error
	CompleteSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, ownerID int, sessionID string) (*Session, error)
	ListSessions(ctx context.Context, ownerID, limit int) ([]Session, error)
}
