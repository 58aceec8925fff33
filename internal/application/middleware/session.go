package middleware

import (
	"github.com/labstack/echo/v4"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/gateway/session"
)

// SessionHeader carries the client's session id in both directions
const SessionHeader = "X-Session-ID"

const sessionContextKey = "weather-planner.session"

// Sessions attaches a session to every request, creating one when the header is absent,
// unknown or expired. The effective id is echoed back in SessionHeader.
func Sessions(gateway session.Gateway) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, _ := gateway.GetOrCreate(c.Request().Header.Get(SessionHeader))
			c.Set(sessionContextKey, current)
			c.Response().Header().Set(SessionHeader, current.ID)
			return next(c)
		}
	}
}

// SessionFrom returns the session attached by Sessions, or nil outside it
func SessionFrom(c echo.Context) *entity.Session {
	current, _ := c.Get(sessionContextKey).(*entity.Session)
	return current
}
