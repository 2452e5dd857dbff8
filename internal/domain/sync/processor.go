package sync

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"leadsync/internal/domain/contact"
)

// Processor выполняет одну клиентскую операцию против хранилища.
// Каждая операция проходит ровно один переход: pending -> success | conflict | error.
type Processor struct {
	repo      contact.Repository
	mapper    *LocalIDMapper
	detector  *Detector
	validator contact.Validator
	log       *slog.Logger
}

// NewProcessor создает новый процессор операций
func NewProcessor(repo contact.Repository, mapper *LocalIDMapper, detector *Detector, validator contact.Validator, log *slog.Logger) *Processor {
	return &Processor{
		repo:      repo,
		mapper:    mapper,
		detector:  detector,
		validator: validator,
		log:       log.With("component", "operation_processor"),
	}
}

// Process обрабатывает операцию и возвращает терминальный результат.
// Ошибки хранилища и валидации не выходят за пределы результата.
func (p *Processor) Process(ctx context.Context, ownerID int, op Operation) Result {
	switch op.Action {
	case ActionCreate:
		return p.processCreate(ctx, ownerID, op)
	case ActionUpdate:
		return p.processUpdate(ctx, ownerID, op)
	case ActionDelete:
		return p.processDelete(ctx, ownerID, op)
	default:
		return p.errorResult(op, fmt.Sprintf("%v: %q", ErrUnknownAction, op.Action))
	}
}

func (p *Processor) processCreate(ctx context.Context, ownerID int, op Operation) Result {
	if op.Data == nil {
		return p.errorResult(op, ErrMissingData.Error())
	}

	existing, err := p.mapper.FindByLocalID(ctx, ownerID, op.LocalID)
	if err == nil {
		// Повторный create для уже известного local id — всегда конфликт:
		// клиент считает, что записи на сервере нет, а она есть.
		return Result{
			LocalID:  op.LocalID,
			ServerID: existing.ID,
			Action:   op.Action,
			Status:   StatusConflict,
			Conflict: &ConflictData{
				ClientData:     *op.Data,
				ServerData:     existing,
				ConflictFields: p.detector.Diff(*op.Data, existing),
			},
		}
	}
	if !errors.Is(err, contact.ErrNotFound) {
		p.log.Error("local id lookup failed",
			"owner_id", ownerID, "local_id", op.LocalID, "error", err)
		return p.errorResult(op, fmt.Sprintf("local id lookup failed: %v", err))
	}

	if err := p.validator.ValidateCreate(*op.Data); err != nil {
		return p.errorResult(op, err.Error())
	}

	localID := op.LocalID
	c := &contact.Contact{
		OwnerID: ownerID,
		LocalID: &localID,
	}
	op.Data.ApplyTo(c)
	if c.CapturedAt == nil {
		ts := op.Timestamp
		c.CapturedAt = &ts
	}

	serverID, err := p.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, contact.ErrDuplicateLocalID) {
			return p.errorResult(op, fmt.Sprintf("local id %q already claimed by a concurrent sync", op.LocalID))
		}
		p.log.Error("failed to create record",
			"owner_id", ownerID, "local_id", op.LocalID, "error", err)
		return p.errorResult(op, fmt.Sprintf("create failed: %v", err))
	}

	return Result{
		LocalID:  op.LocalID,
		ServerID: serverID,
		Action:   op.Action,
		Status:   StatusSuccess,
	}
}

func (p *Processor) processUpdate(ctx context.Context, ownerID int, op Operation) Result {
	if op.Data == nil {
		return p.errorResult(op, ErrMissingData.Error())
	}

	rec, err := p.resolveTarget(ctx, ownerID, op)
	if err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			return p.errorResult(op, "record not found")
		}
		return p.errorResult(op, fmt.Sprintf("target lookup failed: %v", err))
	}

	// Запись нашли по server id, но связки с local id еще нет — закрепляем,
	// чтобы будущие операции клиента резолвились и без server id.
	if op.ServerID > 0 && rec.LocalID == nil && op.LocalID != "" {
		if err := p.mapper.RecordMapping(ctx, ownerID, op.LocalID, rec.ID); err != nil {
			p.log.Warn("failed to persist local id mapping",
				"owner_id", ownerID, "local_id", op.LocalID, "server_id", rec.ID, "error", err)
		} else {
			localID := op.LocalID
			rec.LocalID = &localID
		}
	}

	// Фенс по времени: сервер принял запись, которую клиент еще не видел.
	if rec.UpdatedAt.After(op.Timestamp) {
		return Result{
			LocalID:  op.LocalID,
			ServerID: rec.ID,
			Action:   op.Action,
			Status:   StatusConflict,
			Conflict: &ConflictData{
				ClientData:     *op.Data,
				ServerData:     rec,
				ConflictFields: p.detector.Diff(*op.Data, rec),
			},
		}
	}

	if err := p.validator.ValidateUpdate(*op.Data); err != nil {
		return p.errorResult(op, err.Error())
	}

	op.Data.ApplyTo(rec)

	if err := p.repo.Update(ctx, rec); err != nil {
		p.log.Error("failed to update record",
			"owner_id", ownerID, "server_id", rec.ID, "error", err)
		return p.errorResult(op, fmt.Sprintf("update failed: %v", err))
	}

	return Result{
		LocalID:  op.LocalID,
		ServerID: rec.ID,
		Action:   op.Action,
		Status:   StatusSuccess,
	}
}

func (p *Processor) processDelete(ctx context.Context, ownerID int, op Operation) Result {
	rec, err := p.resolveTarget(ctx, ownerID, op)
	if err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			// Удаление сходится само: цели нет — считаем удаленной.
			return Result{
				LocalID:  op.LocalID,
				ServerID: op.ServerID,
				Action:   op.Action,
				Status:   StatusSuccess,
			}
		}
		return p.errorResult(op, fmt.Sprintf("target lookup failed: %v", err))
	}

	if err := p.repo.SoftDelete(ctx, ownerID, rec.ID); err != nil {
		if errors.Is(err, contact.ErrNotFound) {
			return Result{
				LocalID:  op.LocalID,
				ServerID: rec.ID,
				Action:   op.Action,
				Status:   StatusSuccess,
			}
		}
		p.log.Error("failed to soft delete record",
			"owner_id", ownerID, "server_id", rec.ID, "error", err)
		return p.errorResult(op, fmt.Sprintf("delete failed: %v", err))
	}

	return Result{
		LocalID:  op.LocalID,
		ServerID: rec.ID,
		Action:   op.Action,
		Status:   StatusSuccess,
	}
}

// resolveTarget находит целевую запись: по server id, если клиент его знает,
// иначе по local id.
func (p *Processor) resolveTarget(ctx context.Context, ownerID int, op Operation) (*contact.Contact, error) {
	if op.ServerID > 0 {
		return p.repo.Get(ctx, ownerID, op.ServerID)
	}

	return p.mapper.FindByLocalID(ctx, ownerID, op.LocalID)
}

func (p *Processor) errorResult(op Operation, msg string) Result {
	return Result{
		LocalID:  op.LocalID,
		ServerID: op.ServerID,
		Action:   op.Action,
		Status:   StatusError,
		Error:    msg,
	}
}
