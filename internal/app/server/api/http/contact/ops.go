package contact

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-list",
		Method:      http.MethodGet,
		Path:        "/api/contacts",
		Summary:     "Список контактов",
		Description: "Возвращает все живые контакты владельца",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-create",
		Method:      http.MethodPost,
		Path:        "/api/contacts",
		Summary:     "Создать контакт",
		Description: "Создает контакт вне потока синхронизации, без local id",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-get",
		Method:      http.MethodGet,
		Path:        "/api/contacts/{id}",
		Summary:     "Получить контакт",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-update",
		Method:      http.MethodPut,
		Path:        "/api/contacts/{id}",
		Summary:     "Обновить контакт",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-search",
		Method:      http.MethodGet,
		Path:        "/api/contacts/search",
		Summary:     "Поиск контактов",
		Description: "Фильтрует контакты по компании, интересу и окну updated_at",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) modifiedSinceOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-modified-since",
		Method:      http.MethodGet,
		Path:        "/api/contacts/modified",
		Summary:     "Дельта изменений",
		Description: "Возвращает контакты, измененные после заданного момента, включая удаленные",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "contact-delete",
		Method:      http.MethodDelete,
		Path:        "/api/contacts/{id}",
		Summary:     "Удалить контакт",
		Description: "Мягкое удаление: запись помечается deleted_at",
		Tags:        []string{"contacts"},
		Middlewares: h.middleware,
	}
}
