package sync

import "errors"

var (
	ErrEmptyBatch      = errors.New("operations batch is empty")
	ErrBatchTooLarge   = errors.New("operations batch exceeds maximum size")
	ErrMissingData     = errors.New("operation data is required")
	ErrSessionNotFound = errors.New("sync session not found")
	ErrUnknownAction   = errors.New("unknown sync action")
	ErrUnknownStrategy = errors.New("unknown resolution strategy")
	ErrNotInConflict   = errors.New("result is not in conflict status")
)
