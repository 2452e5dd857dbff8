//POST /api/sync/bulk              # Пакетная синхронизация (owner)
//POST /api/sync/conflicts/resolve # Разрешение конфликта (owner)
//GET  /api/sync/last-sync         # Время последней принятой записи (owner)
//GET  /api/sync/mappings          # Связки local id -> server id (owner)
//GET  /api/sync/sessions          # История сессий (owner)
//GET  /api/sync/sessions/{id}     # Прогресс сессии (owner)
//GET  /api/contacts               # Список контактов (owner)
//POST /api/contacts               # Создать контакт вне синка (owner)
//GET  /api/contacts/search        # Поиск по компании/интересу/окну updated_at (owner)
//GET  /api/contacts/modified      # Дельта изменений после заданного момента (owner)

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	contactAPI "leadsync/internal/app/server/api/http/contact"
	healthAPI "leadsync/internal/app/server/api/http/health"
	"leadsync/internal/app/server/api/http/middleware"
	"leadsync/internal/app/server/api/http/middleware/logger"
	"leadsync/internal/app/server/api/http/middleware/owner"
	syncAPI "leadsync/internal/app/server/api/http/sync"
	"leadsync/internal/config"
	"leadsync/internal/domain/contact"
	"leadsync/internal/domain/sync"
	"leadsync/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Contact *contactAPI.Handler
	Sync    *syncAPI.Handler
}

// New создает *chi.Mux со ВСЕМИ операциями через huma.Register
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Leadsync API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"gateway": {Type: "apiKey", In: "header", Name: owner.HeaderOwnerID},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.Contact.SetupRoutes(API)
	h.Sync.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	ownerMW := owner.New(log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	contactRepo := postgres.NewContactRepository(storage.Pool(), log)
	validator := contact.NewPayloadValidator()
	contactService := contact.NewService(contactRepo, validator, log)
	middlewares.Add(ownerMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	contactHandler := contactAPI.NewHandler(contactService, log, middlewares.GetAllAndClear())

	sessionRepo := postgres.NewSessionRepository(storage.Pool(), log)
	detector := sync.NewDetector()
	mapper := sync.NewLocalIDMapper(contactRepo, log)
	processor := sync.NewProcessor(contactRepo, mapper, detector, validator, log)
	resolver := sync.NewResolver(contactRepo, log)
	tracker := sync.NewTracker(sessionRepo, log)
	syncService := sync.NewService(contactRepo, processor, resolver, mapper, detector, tracker, log, &sync.ServiceConfig{
		ChunkSize:    cfg.Sync.ChunkSize,
		MaxBatchSize: cfg.Sync.MaxBatchSize,
		HistoryLimit: cfg.Sync.HistoryLimit,
	})
	middlewares.Add(ownerMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	syncHandler := syncAPI.NewHandler(syncService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Contact: contactHandler,
		Sync:    syncHandler,
	}
}
