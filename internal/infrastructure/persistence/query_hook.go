package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/uptrace/bun"
)

// QueryHook registra en zerolog las consultas que fallan y las que superan el umbral de lentitud.
type QueryHook struct {
	log      zerolog.Logger
	slowTime time.Duration
}

var _ bun.QueryHook = (*QueryHook)(nil)

// NewQueryHook construye el hook. slowTime <= 0 desactiva el aviso de consultas lentas.
func NewQueryHook(log zerolog.Logger, slowTime time.Duration) *QueryHook {
	return &QueryHook{log: log, slowTime: slowTime}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	dur := time.Since(event.StartTime)

	switch {
	case event.Err == nil:
	case errors.Is(event.Err, sql.ErrNoRows), errors.Is(event.Err, sql.ErrTxDone):
		return
	default:
		h.log.Warn().
			Err(event.Err).
			Str("operation", event.Operation()).
			Dur("duration", dur).
			Str("query", event.Query).
			Msg("consulta fallida")
		return
	}

	if h.slowTime > 0 && dur > h.slowTime {
		h.log.Warn().
			Str("operation", event.Operation()).
			Dur("duration", dur).
			Str("query", event.Query).
			Msg("consulta lenta")
	}
}
