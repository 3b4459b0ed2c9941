package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/fitness-center/internal/middleware"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthHandler reports whether the service is alive and its dependencies
// are reachable. Load balancers and uptime monitors poll it.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// dependencyCheck pings one dependency. Only required checks can make
// the service unhealthy.
type dependencyCheck struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

// checks lists the enabled dependency checks. Redis only backs the
// welcome email queue, so it is reported but never required.
func (h *HealthHandler) checks() []dependencyCheck {
	obs := h.server.Config.Observability

	var checks []dependencyCheck

	if obs.HealthCheckEnabled("database") && h.server.DB != nil {
		checks = append(checks, dependencyCheck{
			name:     "database",
			required: true,
			ping:     h.server.DB.Pool.Ping,
		})
	}

	if obs.HealthCheckEnabled("redis") && h.server.Redis != nil {
		checks = append(checks, dependencyCheck{
			name: "redis",
			ping: func(ctx context.Context) error {
				return h.server.Redis.Ping(ctx).Err()
			},
		})
	}

	return checks
}

// CheckHealth returns 200 when every required dependency answers
// within the configured timeout and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := h.evaluate(c.Request().Context(), &logger, h.checks())

	if response.Status == StatusUnhealthy {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]interface{}{
			"check_type":        "overall",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// evaluate runs every check and derives the overall status.
func (h *HealthHandler) evaluate(ctx context.Context, logger *zerolog.Logger, checks []dependencyCheck) HealthResponse {
	response := HealthResponse{
		Status:      StatusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult, len(checks)),
	}

	for _, check := range checks {
		result := h.run(ctx, logger, check)
		response.Checks[check.name] = result

		if result.Status == StatusUnhealthy && check.required {
			response.Status = StatusUnhealthy
		}
	}

	return response
}

func (h *HealthHandler) run(ctx context.Context, logger *zerolog.Logger, check dependencyCheck) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checkStart := time.Now()
	err := check.ping(ctx)
	elapsed := time.Since(checkStart)

	if err == nil {
		logger.Debug().
			Str("check", check.name).
			Dur("response_time", elapsed).
			Msg("dependency check passed")

		return CheckResult{Status: StatusHealthy, ResponseTime: elapsed.String()}
	}

	event := logger.Warn()
	if check.required {
		event = logger.Error()
	}
	event.
		Err(err).
		Str("check", check.name).
		Dur("response_time", elapsed).
		Msg("dependency check failed")

	h.recordHealthCheckError(map[string]interface{}{
		"check_type":       check.name,
		"error_type":       check.name + "_unhealthy",
		"response_time_ms": elapsed.Milliseconds(),
		"error_message":    err.Error(),
	})

	return CheckResult{Status: StatusUnhealthy, ResponseTime: elapsed.String(), Error: err.Error()}
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]interface{}) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs["operation"] = "health_check"
	app.RecordCustomEvent("HealthCheckError", attrs)
}
