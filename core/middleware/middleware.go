package middleware

import (
	"time"

	"meeting-scheduler-api/core/constants"
	"meeting-scheduler-api/core/logger"
	"meeting-scheduler-api/core/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Middleware bundles the HTTP middleware used across modules
type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// RequestID attaches a short correlation ID to every request, honoring an
// inbound X-Request-ID when present.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(constants.RequestIDHeader)
			if reqID == "" {
				reqID = utils.GenerateRequestID()
			}
			c.Set(constants.ContextRequestID, reqID)
			c.Response().Header().Set(constants.RequestIDHeader, reqID)
			return next(c)
		}
	}
}

// RequestLogger logs one structured line per request.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			reqID, _ := c.Get(constants.ContextRequestID).(string)
			logger.Info("request",
				"request_id", reqID,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

func (m *Middleware) Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}

func (m *Middleware) CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE, echo.OPTIONS},
	})
}

func (m *Middleware) BodyLimit() echo.MiddlewareFunc {
	return echomw.BodyLimit(constants.RequestBodyLimit)
}
