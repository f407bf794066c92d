package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware tags each request with an X-Request-ID (minted when the client
// sends none) and logs one line per request after the handler chain runs.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
			c.Set("X-Request-ID", rid)
		}

		err := c.Next()

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] %s %s rid=%s ip=%s status=%d latency=%s bytes=%d",
				c.Method(), c.OriginalURL(), rid, c.IP(),
				c.Response().StatusCode(), time.Since(start),
				c.Response().Header.ContentLength(),
			)
		}

		return err
	}
}
