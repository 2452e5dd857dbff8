package sync

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) bulkSyncOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-bulk",
		Method:      http.MethodPost,
		Path:        "/api/sync/bulk",
		Summary:     "Пакетная синхронизация операций",
		Description: "Принимает накопленный офлайн пакет create/update/delete операций и применяет его к хранилищу",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) resolveConflictOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-resolve-conflict",
		Method:      http.MethodPost,
		Path:        "/api/sync/conflicts/resolve",
		Summary:     "Разрешить конфликт синхронизации",
		Description: "Применяет выбранную стратегию к ранее обнаруженному конфликту",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) lastSyncOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-last-timestamp",
		Method:      http.MethodGet,
		Path:        "/api/sync/last-sync",
		Summary:     "Время последней принятой записи",
		Description: "Возвращает max(updated_at) по живым записям владельца",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) mappingsOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-local-id-mappings",
		Method:      http.MethodGet,
		Path:        "/api/sync/mappings",
		Summary:     "Связки local id -> server id",
		Description: "Возвращает все связки локальных идентификаторов владельца",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getSessionOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-get-session",
		Method:      http.MethodGet,
		Path:        "/api/sync/sessions/{id}",
		Summary:     "Состояние сессии синхронизации",
		Description: "Возвращает прогресс и итоги одной сессии",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listSessionsOp() huma.Operation {
	return huma.Operation{
		OperationID: "sync-list-sessions",
		Method:      http.MethodGet,
		Path:        "/api/sync/sessions",
		Summary:     "История сессий синхронизации",
		Description: "Возвращает последние сессии владельца",
		Tags:        []string{"sync"},
		Middlewares: h.middleware,
	}
}
