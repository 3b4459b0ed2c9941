package logger

import (
	"testing"

	"github.com/deppfellow/fitness-center/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerUsesConfiguredLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	log := NewLogger(cfg)

	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestLoggerServiceDisabledWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, svc.GetApplication())
	svc.Shutdown()

	var nilSvc *LoggerService
	assert.Nil(t, nilSvc.GetApplication())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	base := zerolog.Nop()

	assert.Equal(t, base, WithTraceContext(base, nil))
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel: tracelog.LogLevelTrace,
		zerolog.DebugLevel: tracelog.LogLevelDebug,
		zerolog.InfoLevel:  tracelog.LogLevelInfo,
		zerolog.WarnLevel:  tracelog.LogLevelWarn,
		zerolog.ErrorLevel: tracelog.LogLevelError,
		zerolog.Disabled:   tracelog.LogLevelNone,
	}

	for in, want := range cases {
		assert.Equal(t, want, GetPgxTraceLogLevel(in), in.String())
	}
}
