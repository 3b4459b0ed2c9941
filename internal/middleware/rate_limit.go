package middleware

import (
	"github.com/deppfellow/fitness-center/internal/metrics"
	"github.com/deppfellow/fitness-center/internal/server"
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// RecordRateLimitHit counts a rejected request and reports it to New Relic when enabled.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	metrics.RecordRateLimitHit(endpoint)

	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
