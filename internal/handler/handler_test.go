package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/fitness-center/internal/config"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Observability: config.DefaultObservabilityConfig()},
		Logger: &logger,
	}
}

func TestToWorkoutSessionResponseFormatsDate(t *testing.T) {
	resp := toWorkoutSessionResponse(model.WorkoutSession{
		ID:          3,
		MemberID:    1,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Duration:    45,
		WorkoutType: "cardio",
	})

	assert.Equal(t, WorkoutSessionResponse{
		ID:          3,
		MemberID:    1,
		Date:        "2024-03-01",
		Duration:    45,
		WorkoutType: "cardio",
	}, resp)
}

func TestServeOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o644))

	h := NewOpenAPIHandler(newTestServer())
	h.dir = dir

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)

	require.NoError(t, h.ServeOpenAPIUI(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "<html>docs</html>", rec.Body.String())
}

func TestServeOpenAPIUIMissingFile(t *testing.T) {
	h := NewOpenAPIHandler(newTestServer())
	h.dir = t.TempDir()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())

	assert.Error(t, h.ServeOpenAPIUI(c))
}

func TestHandleRejectsInvalidPayloadBeforeHandler(t *testing.T) {
	called := false
	fn := func(c echo.Context, req *model.CreateMemberRequest) (*CreatedResponse, error) {
		called = true
		return &CreatedResponse{}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "/members", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := echo.New().NewContext(req, httptest.NewRecorder())

	err := Handle(NewHandler(newTestServer()), fn, http.StatusCreated, New[model.CreateMemberRequest]())(c)

	assert.Error(t, err)
	assert.False(t, called)
}

func TestCheckHealthWithoutDependencies(t *testing.T) {
	h := NewHealthHandler(newTestServer())

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
}

func TestEvaluateRequiredAndOptionalChecks(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     []dependencyCheck
		wantStatus string
	}{
		{
			name: "all up",
			checks: []dependencyCheck{
				{name: "database", required: true, ping: up},
				{name: "redis", ping: up},
			},
			wantStatus: StatusHealthy,
		},
		{
			name: "optional dependency down",
			checks: []dependencyCheck{
				{name: "database", required: true, ping: up},
				{name: "redis", ping: down},
			},
			wantStatus: StatusHealthy,
		},
		{
			name: "required dependency down",
			checks: []dependencyCheck{
				{name: "database", required: true, ping: down},
				{name: "redis", ping: up},
			},
			wantStatus: StatusUnhealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(newTestServer())
			logger := zerolog.Nop()

			response := h.evaluate(context.Background(), &logger, tt.checks)

			assert.Equal(t, tt.wantStatus, response.Status)
			assert.Len(t, response.Checks, len(tt.checks))
		})
	}
}

func TestRunReportsPingError(t *testing.T) {
	h := NewHealthHandler(newTestServer())
	logger := zerolog.Nop()

	result := h.run(context.Background(), &logger, dependencyCheck{
		name: "redis",
		ping: func(context.Context) error { return errors.New("dial tcp: refused") },
	})

	assert.Equal(t, StatusUnhealthy, result.Status)
	assert.Equal(t, "dial tcp: refused", result.Error)
}
