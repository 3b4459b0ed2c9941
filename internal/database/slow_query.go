package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type slowQueryStartKey struct{}

// slowQueryTracer warns about statements that run longer than threshold.
type slowQueryTracer struct {
	threshold time.Duration
	logger    zerolog.Logger
}

func newSlowQueryTracer(threshold time.Duration, logger *zerolog.Logger) *slowQueryTracer {
	return &slowQueryTracer{
		threshold: threshold,
		logger:    logger.With().Str("component", "pgx").Logger(),
	}
}

func (t *slowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, slowQueryStartKey{}, time.Now())
}

func (t *slowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(slowQueryStartKey{}).(time.Time)
	if !ok {
		return
	}

	elapsed := time.Since(start)
	if elapsed < t.threshold {
		return
	}

	// Prefer the request-scoped logger so the line carries the request id.
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &t.logger
	}

	logger.Warn().
		Dur("elapsed", elapsed).
		Dur("threshold", t.threshold).
		Str("command_tag", data.CommandTag.String()).
		Err(data.Err).
		Msg("slow query")
}
