package contact

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"leadsync/internal/app/server/api/http/middleware/owner"
	"leadsync/internal/domain/contact"
)

type Handler struct {
	service    contact.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service contact.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.modifiedSinceOp(), h.modifiedSince)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	response, err := h.service.List(ctx, ownerID)
	if err != nil {
		return &listOutput{
			Body: ListResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &listOutput{
		Body: ListResponse{
			Status:   "Ok",
			Contacts: response.Contacts,
			Total:    response.Total,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	id, err := h.service.Create(ctx, ownerID, input.Body)
	if err != nil {
		return &createOutput{
			Body: MutationResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &createOutput{
		Body: MutationResponse{
			ID:     id,
			Status: "Ok",
		},
	}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	criteria := contact.SearchCriteria{
		Company:  input.Company,
		Interest: input.Interest,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	if input.From != "" {
		from, err := time.Parse(time.RFC3339, input.From)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("malformed from timestamp")
		}
		criteria.FromDate = &from
	}
	if input.To != "" {
		to, err := time.Parse(time.RFC3339, input.To)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("malformed to timestamp")
		}
		criteria.ToDate = &to
	}

	contacts, err := h.service.Search(ctx, ownerID, criteria)
	if err != nil {
		return &searchOutput{
			Body: ListResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &searchOutput{
		Body: ListResponse{
			Status:   "Ok",
			Contacts: contacts,
			Total:    len(contacts),
		},
	}, nil
}

func (h *Handler) modifiedSince(ctx context.Context, input *modifiedSinceInput) (*modifiedSinceOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	since, err := time.Parse(time.RFC3339, input.Since)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("malformed since timestamp")
	}

	contacts, err := h.service.GetModifiedSince(ctx, ownerID, since)
	if err != nil {
		return &modifiedSinceOutput{
			Body: ListResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &modifiedSinceOutput{
		Body: ListResponse{
			Status:   "Ok",
			Contacts: contacts,
			Total:    len(contacts),
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	c, err := h.service.Find(ctx, ownerID, input.ID)
	if err != nil {
		return &findOutput{
			Body: FindResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &findOutput{
		Body: FindResponse{
			Status:  "Ok",
			Contact: c,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	c, err := h.service.Update(ctx, ownerID, input.ID, input.Body)
	if err != nil {
		return &updateOutput{
			Body: FindResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &updateOutput{
		Body: FindResponse{
			Status:  "Ok",
			Contact: c,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	ownerID, ok := owner.GetOwnerID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("owner not identified")
	}

	if err := h.service.SoftDelete(ctx, ownerID, input.ID); err != nil {
		return &deleteOutput{
			Body: MutationResponse{
				Status: "Error",
				Error:  err.Error(),
			},
		}, nil
	}

	return &deleteOutput{
		Body: MutationResponse{
			ID:     input.ID,
			Status: "Ok",
		},
	}, nil
}
