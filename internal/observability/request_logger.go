package observability

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// RequestLogger logs one line per request and records request metrics.
// The route pattern, not the raw path, is used as the metric key so
// customer ids never end up in counters.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		metrics.RecordRequest(route, c.Method(), status, duration)

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("duration", duration))
		return err
	}
}
