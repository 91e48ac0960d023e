package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/icconsult/customer-service/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("trace"))
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("nonsense"))
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/v1/customer/:id", http.MethodGet, 200, time.Millisecond)
	m.RecordRequest("/api/v1/customer/:id", http.MethodGet, 200, time.Millisecond)
	m.RecordError("/api/v1/customer/:id", http.MethodPut, "NOT_FOUND")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/api/v1/customer/:id|GET|200"])
	assert.Equal(t, int64(1), snap.Errors["/api/v1/customer/:id|PUT|NOT_FOUND"])
	assert.Equal(t, 2*time.Millisecond, snap.TotalDuration)

	snap.Requests["/api/v1/customer/:id|GET|200"] = 99
	assert.Equal(t, int64(2), m.Snapshot().Requests["/api/v1/customer/:id|GET|200"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", http.MethodGet, 200, 0)
	m.RecordError("/", http.MethodGet, "X")
	assert.Empty(t, m.Snapshot().Requests)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.New(core), metrics))
	app.Get("/api/v1/customer/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customer/abc-123", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "req-1", resp.Header.Get(HeaderRequestID))
	assert.Equal(t, int64(1), metrics.Snapshot().Requests["/api/v1/customer/:id|GET|204"])
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-1", logs.All()[0].ContextMap()["request_id"])
	assert.Equal(t, "/api/v1/customer/:id", logs.All()[0].ContextMap()["route"])
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), nil))
	app.Get("/", func(c *fiber.Ctx) error { return nil })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)
}
