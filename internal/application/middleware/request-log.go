package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
)

// SetupRequestLogger registers the request logging middleware. Every line carries the session id
// set by Sessions, so one conversation can be followed across requests.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			if strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/") {
				return true
			}
			return c.QueryParam("request_type") == "healthcheck"
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			sessionID := c.Response().Header().Get(SessionHeader)
			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status, v.Latency, v.RequestID),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
					zap.String("session_id", sessionID),
				)
			} else {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Latency, v.RequestID, v.Error),
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
					zap.String("session_id", sessionID),
					zap.Error(v.Error),
				)
			}
			return nil
		},
	}))
}
