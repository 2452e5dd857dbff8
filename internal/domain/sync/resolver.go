package sync

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/exp/slog"

	"leadsync/internal/domain/contact"
)

// Strategy — стратегия разрешения конфликта
type Strategy string

const (
	StrategyServerWins Strategy = "server_wins"
	StrategyClientWins Strategy = "client_wins"
	StrategyMerge      Strategy = "merge"
	StrategyManual     Strategy = "manual"
)

// BusinessInfoGracePeriod — насколько клиентское событие должно опережать
// серверную запись, чтобы бизнес-поля решались в пользу клиента.
const BusinessInfoGracePeriod = time.Hour

// NotesSeparator разделяет серверную и клиентскую части при слиянии заметок.
const NotesSeparator = "\n---\n"

// Resolver классифицирует конфликты по таблице категорий полей
// и применяет выбранную стратегию.
type Resolver struct {
	repo contact.Repository
	log  *slog.Logger
}

// NewResolver создает новый движок разрешения конфликтов
func NewResolver(repo contact.Repository, log *slog.Logger) *Resolver {
	return &Resolver{
		repo: repo,
		log:  log.With("component", "conflict_resolver"),
	}
}

// Classify выбирает стратегию по конфликтным полям. Чистая функция:
// правила проверяются строго в порядке приоритета.
func (r *Resolver) Classify(conflictFields []string, clientEventTime, serverUpdatedAt time.Time) Strategy {
	if len(conflictFields) == 0 {
		// Дубликат create с идентичными данными: сервер уже прав.
		return StrategyServerWins
	}

	allMergeable := true
	allContact := true
	anyBusiness := false

	for _, field := range conflictFields {
		switch CategoryOf(field) {
		case CategoryIdentity:
			return StrategyServerWins
		case CategoryMergeable:
			allContact = false
		case CategoryContact:
			allMergeable = false
		case CategoryBusiness:
			anyBusiness = true
			allMergeable = false
			allContact = false
		default:
			allMergeable = false
			allContact = false
		}
	}

	if allMergeable {
		return StrategyMerge
	}

	if allContact {
		return StrategyClientWins
	}

	if anyBusiness && clientEventTime.Sub(serverUpdatedAt) > BusinessInfoGracePeriod {
		return StrategyClientWins
	}

	return StrategyServerWins
}

// Resolve применяет стратегию к конфликтному результату и возвращает новый
// результат. Ошибки хранилища превращаются в результат со статусом error,
// а не прерывают пакет.
func (r *Resolver) Resolve(ctx context.Context, ownerID int, res Result, strategy Strategy) Result {
	if res.Status != StatusConflict || res.Conflict == nil {
		return errorResult(res, ErrNotInConflict.Error())
	}

	switch strategy {
	case StrategyServerWins:
		// Серверные данные остаются как есть.
		return Result{
			LocalID:  res.LocalID,
			ServerID: res.ServerID,
			Action:   res.Action,
			Status:   StatusSuccess,
		}

	case StrategyClientWins:
		return r.applyPayload(ctx, ownerID, res, res.Conflict.ClientData)

	case StrategyMerge:
		return r.applyMerged(ctx, ownerID, res)

	case StrategyManual:
		// Разрешение вне системы: результат остается конфликтным.
		return res

	default:
		return errorResult(res, fmt.Sprintf("%v: %q", ErrUnknownStrategy, strategy))
	}
}

func (r *Resolver) applyPayload(ctx context.Context, ownerID int, res Result, payload contact.Payload) Result {
	current, err := r.repo.Get(ctx, ownerID, res.ServerID)
	if err != nil {
		r.log.Error("failed to load record for resolution",
			"server_id", res.ServerID, "owner_id", ownerID, "error", err)
		return errorResult(res, fmt.Sprintf("resolution failed: %v", err))
	}

	return r.writePayload(ctx, res, current, payload)
}

// applyMerged сливает клиентские данные с актуальной серверной записью
// и записывает результат.
func (r *Resolver) applyMerged(ctx context.Context, ownerID int, res Result) Result {
	current, err := r.repo.Get(ctx, ownerID, res.ServerID)
	if err != nil {
		r.log.Error("failed to load record for merge",
			"server_id", res.ServerID, "owner_id", ownerID, "error", err)
		return errorResult(res, fmt.Sprintf("merge failed: %v", err))
	}

	merged := MergePayload(res.Conflict.ClientData, current)
	return r.writePayload(ctx, res, current, merged)
}

func (r *Resolver) writePayload(ctx context.Context, res Result, current *contact.Contact, payload contact.Payload) Result {
	payload.ApplyTo(current)

	if err := r.repo.Update(ctx, current); err != nil {
		r.log.Error("failed to write resolved record",
			"server_id", res.ServerID, "error", err)
		return errorResult(res, fmt.Sprintf("resolution failed: %v", err))
	}

	return Result{
		LocalID:  res.LocalID,
		ServerID: res.ServerID,
		Action:   res.Action,
		Status:   StatusSuccess,
	}
}

// MergePayload сливает клиентские данные с текущей серверной записью:
// интересы — объединение множеств, заметки — конкатенация обеих сторон,
// остальные присланные поля — клиентские значения.
func MergePayload(client contact.Payload, server *contact.Contact) contact.Payload {
	merged := client

	if client.Interests != nil || len(server.Interests) > 0 {
		merged.Interests = MergeInterests(client.Interests, server.Interests)
	}

	if client.Notes != nil {
		notes := MergeNotes(server.Notes, *client.Notes)
		merged.Notes = &notes
	}

	return merged
}

// MergeInterests возвращает объединение без дубликатов. Результат
// отсортирован, так как порядок интересов смысла не несет.
func MergeInterests(client, server []string) []string {
	seen := make(map[string]struct{}, len(client)+len(server))
	union := make([]string, 0, len(client)+len(server))

	for _, v := range client {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			union = append(union, v)
		}
	}
	for _, v := range server {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			union = append(union, v)
		}
	}

	sort.Strings(union)
	return union
}

// MergeNotes сохраняет обе стороны, когда они непусты и различаются.
func MergeNotes(server, client string) string {
	switch {
	case server == "":
		return client
	case client == "" || client == server:
		return server
	default:
		return server + NotesSeparator + client
	}
}

func errorResult(res Result, msg string) Result {
	return Result{
		LocalID:  res.LocalID,
		ServerID: res.ServerID,
		Action:   res.Action,
		Status:   StatusError,
		Error:    msg,
	}
}
