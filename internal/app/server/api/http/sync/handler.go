package sync

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"leadsync/internal/app/server/api/http/middleware/owner"
	"leadsync/internal/domain/sync"
)

type Handler struct {
	service    sync.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sync.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.bulkSyncOp(), h.bulkSync)
	huma.Register(api, h.resolveConflictOp(), h.resolveConflict)
	huma.Register(api, h.lastSyncOp(), h.lastSync)
	huma.Register(api, h.mappingsOp(), h.mappings)
	huma.Register(api, h.getSessionOp(), h.getSession)
	huma.Register(api, h.listSessionsOp(), h.listSessions)
}

func (h *Handler) bulkSync(ctx context.Context, input *bulkSyncInput) (*bulkSyncOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	response, err := h.service.ProcessBulkSync(ctx, ownerID, input.Body)
	if err != nil {
		return &bulkSyncOutput{
			Status: http.StatusBadRequest,
			Body: sync.BulkSyncResponse{
				Success: false,
				Error:   err.Error(),
			},
		}, nil
	}

	// 200 — чистая синхронизация, 409 — есть конфликты, 500 — есть ошибки.
	status := http.StatusOK
	switch {
	case !response.Success:
		status = http.StatusInternalServerError
	case len(response.Conflicts) > 0:
		status = http.StatusConflict
	}

	return &bulkSyncOutput{
		Status: status,
		Body:   *response,
	}, nil
}

func (h *Handler) resolveConflict(ctx context.Context, input *resolveConflictInput) (*resolveConflictOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	result, err := h.service.ResolveConflict(ctx, ownerID, input.Body)
	if err != nil {
		return &resolveConflictOutput{
			Body: ResolveConflictResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &resolveConflictOutput{
		Body: ResolveConflictResponse{
			Status: "Ok",
			Result: result,
		},
	}, nil
}

func (h *Handler) lastSync(ctx context.Context, _ *lastSyncInput) (*lastSyncOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	ts, err := h.service.GetLastSyncTimestamp(ctx, ownerID)
	if err != nil {
		return &lastSyncOutput{
			Body: LastSyncResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &lastSyncOutput{
		Body: LastSyncResponse{
			Status:            "Ok",
			LastSyncTimestamp: ts,
		},
	}, nil
}

func (h *Handler) mappings(ctx context.Context, _ *mappingsInput) (*mappingsOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	mappings, err := h.service.GetLocalIDMappings(ctx, ownerID)
	if err != nil {
		return &mappingsOutput{
			Body: MappingsResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &mappingsOutput{
		Body: MappingsResponse{
			Status:   "Ok",
			Mappings: mappings,
		},
	}, nil
}

func (h *Handler) getSession(ctx context.Context, input *getSessionInput) (*getSessionOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	session, err := h.service.GetProgress(ctx, ownerID, input.ID)
	if err != nil {
		return &getSessionOutput{
			Body: SessionResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &getSessionOutput{
		Body: SessionResponse{
			Status:  "Ok",
			Session: session,
		},
	}, nil
}

func (h *Handler) listSessions(ctx context.Context, _ *listSessionsInput) (*listSessionsOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	sessions, err := h.service.GetHistory(ctx, ownerID)
	if err != nil {
		return &listSessionsOutput{
			Body: SessionListResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &listSessionsOutput{
		Body: SessionListResponse{
			Status:   "Ok",
			Sessions: sessions,
		},
	}, nil
}
