package sync

import (
	"time"

	"leadsync/internal/domain/contact"
)

// Action — тип клиентской операции
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Status — терминальный статус операции
type Status string

const (
	StatusSuccess  Status = "success"
	StatusConflict Status = "conflict"
	StatusError    Status = "error"
)

// Operation — одно намерение клиента из офлайн-очереди
type Operation struct {
	Action    Action           `json:"action" enum:"create,update,delete"`
	LocalID   string           `json:"local_id"`
	ServerID  int              `json:"server_id,omitempty"`
	Timestamp time.Time        `json:"timestamp" format:"date-time"`
	Data      *contact.Payload `json:"data,omitempty"`
}

// Result — исход обработки одной операции
type Result struct {
	LocalID  string        `json:"local_id"`
	ServerID int           `json:"server_id,omitempty"`
	Action   Action        `json:"action"`
	Status   Status        `json:"status" enum:"success,conflict,error"`
	Error    string        `json:"error,omitempty"`
	Conflict *ConflictData `json:"conflict_data,omitempty"`
}

// ConflictData — обе стороны обнаруженного конфликта
type ConflictData struct {
	ClientData     contact.Payload  `json:"client_data"`
	ServerData     *contact.Contact `json:"server_data"`
	ConflictFields []string         `json:"conflict_fields"`
}

// SessionStatus — статус сессии синхронизации
type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionFailed     SessionStatus = "failed"
)

// Session — учет одного вызова пакетной синхронизации
type Session struct {
	ID                   string        `json:"id"`
	OwnerID              int           `json:"owner_id"`
	Status               SessionStatus `json:"status" enum:"in_progress,completed,failed"`
	TotalOperations      int           `json:"total_operations"`
	ProcessedOperations  int           `json:"processed_operations"`
	SuccessfulOperations int           `json:"successful_operations"`
	FailedOperations     int           `json:"failed_operations"`
	ConflictOperations   int           `json:"conflict_operations"`
	CurrentStep          string        `json:"current_step,omitempty"`
	StartedAt            time.Time     `json:"started_at"`
	CompletedAt          *time.Time    `json:"completed_at,omitempty"`
}

// ServiceConfig конфигурация сервиса синхронизации
type ServiceConfig struct {
	ChunkSize    int `json:"chunk_size"`
	MaxBatchSize int `json:"max_batch_size"`
	HistoryLimit int `json:"history_limit"`
}
