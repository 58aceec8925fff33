package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"weather-planner/internal/domain/gateway/session"
)

func serveWithSessions(gateway session.Gateway, header string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	var seen string
	e.Use(Sessions(gateway))
	e.GET("/", func(c echo.Context) error {
		if current := SessionFrom(c); current != nil {
			seen = current.ID
		}
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(SessionHeader, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, seen
}

func TestSessionsKeepsClientID(t *testing.T) {
	gateway := session.NewMemoryGateway(time.Hour, 10)

	rec, seen := serveWithSessions(gateway, "abc-123")
	if seen != "abc-123" || rec.Header().Get(SessionHeader) != "abc-123" {
		t.Fatalf("seen = %q header = %q", seen, rec.Header().Get(SessionHeader))
	}

	serveWithSessions(gateway, "abc-123")
	if gateway.Count() != 1 {
		t.Errorf("count = %d, the same id must reuse its session", gateway.Count())
	}
}

func TestSessionsIssuesIDWhenMissing(t *testing.T) {
	gateway := session.NewMemoryGateway(time.Hour, 10)

	rec, seen := serveWithSessions(gateway, "")
	if seen == "" || rec.Header().Get(SessionHeader) != seen {
		t.Fatalf("seen = %q header = %q", seen, rec.Header().Get(SessionHeader))
	}
	if _, ok := gateway.Get(seen); !ok {
		t.Error("issued session should be stored")
	}
}

func TestSessionFromOutsideMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	if SessionFrom(c) != nil {
		t.Error("expected no session")
	}
}
