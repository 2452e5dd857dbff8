package sync

import (
	"time"

	"leadsync/internal/domain/contact"
)

// BulkSyncRequest — пакет операций, накопленных клиентом офлайн
type BulkSyncRequest struct {
	Operations        []Operation `json:"operations"`
	LastSyncTimestamp *time.Time  `json:"last_sync_timestamp,omitempty" format:"date-time"`
}

// BulkSyncResponse — агрегированный итог обработки пакета.
// Success истинен при отсутствии ошибок; конфликты на него не влияют.
type BulkSyncResponse struct {
	Success       bool      `json:"success"`
	Results       []Result  `json:"results"`
	Conflicts     []Result  `json:"conflicts,omitempty"`
	Errors        []Result  `json:"errors,omitempty"`
	SyncTimestamp time.Time `json:"sync_timestamp" format:"date-time"`
	SessionID     string    `json:"session_id,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// ResolveConflictRequest — ручное разрешение ранее обнаруженного конфликта.
// Пустая стратегия означает выбор по таблице категорий.
type ResolveConflictRequest struct {
	LocalID      string           `json:"local_id"`
	Strategy     Strategy         `json:"strategy,omitempty" enum:"server_wins,client_wins,merge,manual"`
	ResolvedData *contact.Payload `json:"resolved_data,omitempty"`
}
