package sync

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"leadsync/internal/domain/contact"
)

// LocalIDMapper связывает клиентские локальные идентификаторы
// с серверными записями.
type LocalIDMapper struct {
	repo contact.Repository
	log  *slog.Logger
}

// NewLocalIDMapper создает новый маппер локальных идентификаторов
func NewLocalIDMapper(repo contact.Repository, log *slog.Logger) *LocalIDMapper {
	return &LocalIDMapper{
		repo: repo,
		log:  log.With("component", "local_id_mapper"),
	}
}

// FindByLocalID возвращает живую запись владельца по локальному id,
// contact.ErrNotFound если связки нет.
func (m *LocalIDMapper) FindByLocalID(ctx context.Context, ownerID int, localID string) (*contact.Contact, error) {
	return m.repo.GetByLocalID(ctx, ownerID, localID)
}

// RecordMapping закрепляет локальный id за серверной записью.
func (m *LocalIDMapper) RecordMapping(ctx context.Context, ownerID int, localID string, serverID int) error {
	if err := m.repo.SetLocalID(ctx, ownerID, serverID, localID); err != nil {
		m.log.Error("failed to record local id mapping",
			"owner_id", ownerID, "local_id", localID, "server_id", serverID, "error", err)
		return fmt.Errorf("record mapping: %w", err)
	}

	return nil
}

// Mappings возвращает все связки local id -> server id владельца.
func (m *LocalIDMapper) Mappings(ctx context.Context, ownerID int) (map[string]int, error) {
	mappings, err := m.repo.LocalIDMap(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("local id mappings: %w", err)
	}

	return mappings, nil
}
