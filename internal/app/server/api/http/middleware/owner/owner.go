package owner

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// HeaderOwnerID выставляется вышестоящим шлюзом после аутентификации.
// Сам сервис токены не проверяет.
const HeaderOwnerID = "X-Owner-ID"

type Owner struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Owner {
	return &Owner{
		log: log.With("component", "owner_middleware"),
	}
}

type contextKey string

const OwnerIDKey contextKey = "ownerID"

// Middleware извлекает идентификатор владельца из заголовка и кладет в контекст
func (o *Owner) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		raw := ctx.Header(HeaderOwnerID)

		ownerID, err := strconv.Atoi(raw)
		if err != nil || ownerID <= 0 {
			o.log.Error("missing or malformed owner header", "value", raw)
			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")

			w := ctx.BodyWriter()
			if err := json.NewEncoder(w).Encode(map[string]string{
				"error": "Unauthorized",
			}); err != nil {
				o.log.Error("failed to write unauthorized response", "error", err)
			}
			return
		}

		newCtx := context.WithValue(ctx.Context(), OwnerIDKey, ownerID)
		newHumaCtx := huma.WithContext(ctx, newCtx)

		next(newHumaCtx)
	}
}

func GetOwnerID(ctx context.Context) (int, bool) {
	ownerID, ok := ctx.Value(OwnerIDKey).(int)
	return ownerID, ok
}
