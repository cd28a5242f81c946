package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ManabBehera342/biztab-order-validation/internal/obs"
)

const ctxKeyRequestID = "request_id"

// RequestID returns the request id injected by WithRequestID.
func RequestID(c echo.Context) string {
	v, _ := c.Get(ctxKeyRequestID).(string)
	return v
}

// WithRequestID honors an incoming X-Request-Id header or generates a
// fresh id, and echoes it back on the response.
func WithRequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get("X-Request-Id")
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set(ctxKeyRequestID, reqID)
			c.Response().Header().Set("X-Request-Id", reqID)
			return next(c)
		}
	}
}

// WithLogging logs one structured line per request.
func WithLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start)
			obs.Logger.Infow("http_request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"bytes", c.Response().Size,
				"latency_ms", float64(lat.Microseconds())/1000.0,
				"request_id", RequestID(c),
			)
			return err
		}
	}
}
