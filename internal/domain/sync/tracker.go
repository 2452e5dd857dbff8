package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Tracker ведет жизненный цикл сессий синхронизации. Чистая бухгалтерия:
// бизнес-логики здесь нет, состояние живет в хранилище под ключом сессии,
// а не в памяти процесса.
type Tracker struct {
	repo SessionRepository
	log  *slog.Logger
}

// NewTracker создает новый трекер сессий
func NewTracker(repo SessionRepository, log *slog.Logger) *Tracker {
	return &Tracker{
		repo: repo,
		log:  log.With("component", "sync_tracker"),
	}
}

// CreateSession регистрирует новую сессию для пакета операций.
func (t *Tracker) CreateSession(ctx context.Context, ownerID, totalOperations int) (*Session, error) {
	session := &Session{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		Status:          SessionInProgress,
		TotalOperations: totalOperations,
		StartedAt:       time.Now(),
	}

	if err := t.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create sync session: %w", err)
	}

	return session, nil
}

// UpdateProgress фиксирует продвижение по пакету. Сбой записи прогресса
// не должен ронять синхронизацию — только предупреждение в лог.
func (t *Tracker) UpdateProgress(ctx context.Context, session *Session, processed int, currentStep string) {
	session.ProcessedOperations = processed
	session.CurrentStep = currentStep

	if err := t.repo.UpdateProgress(ctx, session.ID, processed, currentStep); err != nil {
		t.log.Warn("failed to update session progress",
			"session_id", session.ID, "processed", processed, "error", err)
	}
}

// CompleteSession финализирует сессию ровно один раз с фактическими счетчиками.
func (t *Tracker) CompleteSession(ctx context.Context, session *Session, successful, failed, conflicts int) {
	now := time.Now()
	session.SuccessfulOperations = successful
	session.FailedOperations = failed
	session.ConflictOperations = conflicts
	session.ProcessedOperations = successful + failed + conflicts
	session.CompletedAt = &now

	if failed == 0 {
		session.Status = SessionCompleted
	} else {
		session.Status = SessionFailed
	}

	if err := t.repo.CompleteSession(ctx, session); err != nil {
		t.log.Warn("failed to finalize session",
			"session_id", session.ID, "status", session.Status, "error", err)
	}
}

// GetProgress возвращает состояние сессии владельца.
func (t *Tracker) GetProgress(ctx context.Context, ownerID int, sessionID string) (*Session, error) {
	session, err := t.repo.GetSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetHistory возвращает последние сессии владельца.
func (t *Tracker) GetHistory(ctx context.Context, ownerID, limit int) ([]Session, error) {
	sessions, err := t.repo.ListSessions(ctx, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync sessions: %w", err)
	}

	return sessions, nil
}
