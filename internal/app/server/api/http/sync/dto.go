package sync

import (
	"time"

	"leadsync/internal/domain/sync"
)

// Request/Response структуры для BulkSync
type bulkSyncInput struct {
	Body sync.BulkSyncRequest
}

type bulkSyncOutput struct {
	Status int
	Body   sync.BulkSyncResponse
}

// Request/Response для ResolveConflict
type resolveConflictInput struct {
	Body sync.ResolveConflictRequest
}

type resolveConflictOutput struct {
	Body ResolveConflictResponse
}

type ResolveConflictResponse struct {
	Status string       `json:"status"`
	Error  string       `json:"error,omitempty"`
	Result *sync.Result `json:"result,omitempty"`
}

// Request/Response для LastSync
type lastSyncInput struct {
}

type lastSyncOutput struct {
	Body LastSyncResponse
}

type LastSyncResponse struct {
	Status            string     `json:"status"`
	Error             string     `json:"error,omitempty"`
	LastSyncTimestamp *time.Time `json:"last_sync_timestamp,omitempty" format:"date-time"`
}

// Request/Response для Mappings
type mappingsInput struct {
}

type mappingsOutput struct {
	Body MappingsResponse
}

type MappingsResponse struct {
	Status   string         `json:"status"`
	Error    string         `json:"error,omitempty"`
	Mappings map[string]int `json:"mappings,omitempty"`
}

// Request/Response для GetSession
type getSessionInput struct {
	ID string `path:"id" doc:"ID сессии синхронизации"`
}

type getSessionOutput struct {
	Body SessionResponse
}

type SessionResponse struct {
	Status  string        `json:"status"`
	Error   string        `json:"error,omitempty"`
	Session *sync.Session `json:"session,omitempty"`
}

// Request/Response для ListSessions
type listSessionsInput struct {
}

type listSessionsOutput struct {
	Body SessionListResponse
}

type SessionListResponse struct {
	Status   string         `json:"status"`
	Error    string         `json:"error,omitempty"`
	Sessions []sync.Session `json:"sessions,omitempty"`
}
