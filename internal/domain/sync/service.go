package sync

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"leadsync/internal/domain/contact"
)

// Servicer интерфейс сервиса синхронизации
type Servicer interface {
	// ProcessBulkSync обрабатывает пакет операций клиента
	ProcessBulkSync(ctx context.Context, ownerID int, req BulkSyncRequest) (*BulkSyncResponse, error)

	// ResolveConflict разрешает ранее обнаруженный конфликт
	ResolveConflict(ctx context.Context, ownerID int, req ResolveConflictRequest) (*Result, error)

	// GetLastSyncTimestamp возвращает время последней принятой записи владельца
	GetLastSyncTimestamp(ctx context.Context, ownerID int) (*time.Time, error)

	// GetLocalIDMappings возвращает связки local id -> server id
	GetLocalIDMappings(ctx context.Context, ownerID int) (map[string]int, error)

	// GetProgress возвращает состояние сессии синхронизации
	GetProgress(ctx context.Context, ownerID int, sessionID string) (*Session, error)

	// GetHistory возвращает последние сессии владельца
	GetHistory(ctx context.Context, ownerID int) ([]Session, error)
}

// Service — оркестратор пакетной синхронизации
type Service struct {
	repo      contact.Repository
	processor *Processor
	resolver  *Resolver
	mapper    *LocalIDMapper
	detector  *Detector
	tracker   *Tracker
	log       *slog.Logger
	config    *ServiceConfig
}

// NewService создает новый сервис синхронизации
func NewService(repo contact.Repository, processor *Processor, resolver *Resolver, mapper *LocalIDMapper, detector *Detector, tracker *Tracker, log *slog.Logger, config *ServiceConfig) *Service {
	if config == nil {
		config = &ServiceConfig{
			ChunkSize:    50,
			MaxBatchSize: 1000,
			HistoryLimit: 20,
		}
	}

	return &Service{
		repo:      repo,
		processor: processor,
		resolver:  resolver,
		mapper:    mapper,
		detector:  detector,
		tracker:   tracker,
		log:       log.With("component", "sync_service"),
		config:    config,
	}
}

// ProcessBulkSync обрабатывает пакет операций: режет на чанки, гоняет
// процессор по каждой операции и собирает результаты в порядке подачи.
// Отказ одной операции никогда не прерывает остальные.
func (s *Service) ProcessBulkSync(ctx context.Context, ownerID int, req BulkSyncRequest) (*BulkSyncResponse, error) {
	total := len(req.Operations)
	if total == 0 {
		return nil, ErrEmptyBatch
	}
	if total > s.config.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, total, s.config.MaxBatchSize)
	}

	session, err := s.tracker.CreateSession(ctx, ownerID, total)
	if err != nil {
		return nil, fmt.Errorf("start sync session: %w", err)
	}

	results := make([]Result, 0, total)

	for start := 0; start < total; start += s.config.ChunkSize {
		end := start + s.config.ChunkSize
		if end > total {
			end = total
		}

		// Операции внутри чанка выполняются последовательно: это тривиально
		// сохраняет порядок подачи для операций над одним local id.
		for _, op := range req.Operations[start:end] {
			results = append(results, s.processSafely(ctx, ownerID, op))
		}

		s.tracker.UpdateProgress(ctx, session, end,
			fmt.Sprintf("processed %d of %d operations", end, total))
	}

	var conflicts, errs []Result
	for _, res := range results {
		switch res.Status {
		case StatusConflict:
			conflicts = append(conflicts, res)
		case StatusError:
			errs = append(errs, res)
		}
	}

	successful := total - len(conflicts) - len(errs)
	s.tracker.CompleteSession(ctx, session, successful, len(errs), len(conflicts))

	s.log.Info("bulk sync finished",
		"owner_id", ownerID,
		"session_id", session.ID,
		"total", total,
		"successful", successful,
		"conflicts", len(conflicts),
		"errors", len(errs),
	)

	return &BulkSyncResponse{
		Success:       len(errs) == 0,
		Results:       results,
		Conflicts:     conflicts,
		Errors:        errs,
		SyncTimestamp: time.Now(),
		SessionID:     session.ID,
	}, nil
}

// processSafely изолирует панику одной операции: соседние операции пакета
// должны дойти до конца в любом случае.
func (s *Service) processSafely(ctx context.Context, ownerID int, op Operation) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("operation panicked",
				"owner_id", ownerID, "local_id", op.LocalID, "action", op.Action, "panic", r)
			res = Result{
				LocalID:  op.LocalID,
				ServerID: op.ServerID,
				Action:   op.Action,
				Status:   StatusError,
				Error:    fmt.Sprintf("unexpected failure: %v", r),
			}
		}
	}()

	return s.processor.Process(ctx, ownerID, op)
}

// ResolveConflict пересобирает конфликт по текущему состоянию записи и
// применяет запрошенную стратегию. Без стратегии решает таблица категорий.
func (s *Service) ResolveConflict(ctx context.Context, ownerID int, req ResolveConflictRequest) (*Result, error) {
	rec, err := s.mapper.FindByLocalID(ctx, ownerID, req.LocalID)
	if err != nil {
		return nil, fmt.Errorf("resolve conflict: %w", err)
	}

	clientData := contact.Payload{}
	if req.ResolvedData != nil {
		clientData = *req.ResolvedData
	}

	conflictFields := s.detector.Diff(clientData, rec)
	pending := Result{
		LocalID:  req.LocalID,
		ServerID: rec.ID,
		Action:   ActionUpdate,
		Status:   StatusConflict,
		Conflict: &ConflictData{
			ClientData:     clientData,
			ServerData:     rec,
			ConflictFields: conflictFields,
		},
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = s.resolver.Classify(conflictFields, time.Now(), rec.UpdatedAt)
	}

	resolved := s.resolver.Resolve(ctx, ownerID, pending, strategy)
	return &resolved, nil
}

// GetLastSyncTimestamp возвращает max(updated_at) по живым записям владельца,
// nil если записей нет.
func (s *Service) GetLastSyncTimestamp(ctx context.Context, ownerID int) (*time.Time, error) {
	ts, err := s.repo.MaxUpdatedAt(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("last sync timestamp: %w", err)
	}

	return ts, nil
}

// GetLocalIDMappings возвращает все связки владельца.
func (s *Service) GetLocalIDMappings(ctx context.Context, ownerID int) (map[string]int, error) {
	return s.mapper.Mappings(ctx, ownerID)
}

// GetProgress возвращает состояние сессии.
func (s *Service) GetProgress(ctx context.Context, ownerID int, sessionID string) (*Session, error) {
	return s.tracker.GetProgress(ctx, ownerID, sessionID)
}

// GetHistory возвращает последние сессии владельца.
func (s *Service) GetHistory(ctx context.Context, ownerID int) ([]Session, error) {
	return s.tracker.GetHistory(ctx, ownerID, s.config.HistoryLimit)
}
