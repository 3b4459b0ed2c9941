package middleware

import (
	"net/http"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo's CORS middleware for the configured origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger emits one "API" line per request, leveled by status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			// The error handler writes the response after this runs, so the
			// status has to be derived from the returned error.
			// See https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			statusCode := v.Status
			if v.Error != nil {
				statusCode, _, _ = classify(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns handler panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure adds standard security headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// classify maps any error reaching the handler boundary to the response the
// client gets. The code is for logs only.
//
//   - *errs.HTTPError: its own status and body
//   - *errs.StorageError: generic 500, detail only in logs
//   - *echo.HTTPError: its status; 404 becomes "Route not found"
//   - anything else: generic 500
func classify(err error) (int, string, *errs.HTTPError) {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Code, httpErr
	}

	var storageErr *errs.StorageError
	if errors.As(err, &storageErr) {
		code, _ := sqlerr.Describe(storageErr)
		return http.StatusInternalServerError, code, errs.NewInternalServerError()
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code == http.StatusNotFound {
			notFound := errs.NewNotFoundError("Route not found", nil)
			return notFound.Status, notFound.Code, notFound
		}

		message := http.StatusText(echoErr.Code)
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
		code := errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code))
		return echoErr.Code, code, &errs.HTTPError{Code: code, Message: message, Status: echoErr.Code}
	}

	internal := errs.NewInternalServerError()
	return internal.Status, internal.Code, internal
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// The client receives {"error": message} (plus "errors" for validation
// failures); the original error is logged with the request-scoped logger.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	status, code, response := classify(err)

	logger := GetLogger(c)

	var event *zerolog.Event
	if status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	} else {
		event = logger.Warn()
	}

	var storageErr *errs.StorageError
	if errors.As(err, &storageErr) {
		_, detail := sqlerr.Describe(storageErr)
		event = event.Str("storage_op", storageErr.Op).Str("storage_detail", detail)
	}

	event.
		Err(err).
		Int("status", status).
		Str("error_code", code).
		Msg(response.Message)

	if !c.Response().Committed {
		if err := c.JSON(status, response); err != nil {
			logger.Error().Err(err).Msg("failed to write error response")
		}
	}
}
