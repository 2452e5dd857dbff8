package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"leadsync/internal/domain/sync"
)

const sessionColumns = `id, owner_id, status, total_operations, processed_operations,
		       successful_operations, failed_operations, conflict_operations,
		       current_step, started_at, completed_at`

type SessionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		pool: pool,
		log:  log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) CreateSession(ctx context.Context, session *sync.Session) error {
	const query = `
		INSERT INTO sync_sessions (id, owner_id, status, total_operations, started_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		session.ID, session.OwnerID, session.Status, session.TotalOperations, session.StartedAt)
	if err != nil {
		r.log.Error("failed to create sync session",
			"session_id", session.ID, "owner_id", session.OwnerID, "error", err)
		return fmt.Errorf("create sync session: %w", err)
	}

	return nil
}

func (r *SessionRepository) UpdateProgress(ctx context.Context, sessionID string, processed int, currentStep string) error {
	const query = `
		UPDATE sync_sessions
		SET processed_operations = $1, current_step = $2
		WHERE id = $3 AND status = 'in_progress'`

	result, err := r.pool.Exec(ctx, query, processed, currentStep, sessionID)
	if err != nil {
		return fmt.Errorf("update session progress: %w", err)
	}

	if result.RowsAffected() == 0 {
		return sync.ErrSessionNotFound
	}

	return nil
}

// CompleteSession финализирует сессию; повторная финализация не проходит
// из-за фильтра по статусу in_progress.
func (r *SessionRepository) CompleteSession(ctx context.Context, session *sync.Session) error {
	const query = `
		UPDATE sync_sessions
		SET status = $1, processed_operations = $2, successful_operations = $3,
			failed_operations = $4, conflict_operations = $5,
			current_step = '', completed_at = $6
		WHERE id = $7 AND status = 'in_progress'`

	result, err := r.pool.Exec(ctx, query,
		session.Status, session.ProcessedOperations, session.SuccessfulOperations,
		session.FailedOperations, session.ConflictOperations,
		session.CompletedAt, session.ID)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}

	if result.RowsAffected() == 0 {
		return sync.ErrSessionNotFound
	}

	return nil
}

func (r *SessionRepository) GetSession(ctx context.Context, ownerID int, sessionID string) (*sync.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sync_sessions
		WHERE id = $1 AND owner_id = $2`

	row := r.pool.QueryRow(ctx, query, sessionID, ownerID)

	session, err := r.scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sync.ErrSessionNotFound
		}
		r.log.Error("failed to get sync session",
			"session_id", sessionID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get sync session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) ListSessions(ctx context.Context, ownerID, limit int) ([]sync.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sync_sessions
		WHERE owner_id = $1
		ORDER BY started_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		r.log.Error("failed to list sync sessions", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list sync sessions: %w", err)
	}
	defer rows.Close()

	var sessions []sync.Session
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sync session: %w", err)
		}
		sessions = append(sessions, *session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sync session rows: %w", err)
	}

	return sessions, nil
}

func (r *SessionRepository) scanSession(row pgx.Row) (*sync.Session, error) {
	var s sync.Session
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Status, &s.TotalOperations, &s.ProcessedOperations,
		&s.SuccessfulOperations, &s.FailedOperations, &s.ConflictOperations,
		&s.CurrentStep, &s.StartedAt, &s.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
