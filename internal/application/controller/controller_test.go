package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	_ "weather-planner/configs"
	"weather-planner/internal/application/middleware"
	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/gateway/api"
	"weather-planner/internal/domain/gateway/cache"
	"weather-planner/internal/domain/gateway/session"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/usecase/health"
	"weather-planner/internal/domain/usecase/location"
	"weather-planner/internal/domain/usecase/planner"
	"weather-planner/internal/domain/usecase/weather"
)

type failingSource struct{}

func (failingSource) Source() entity.Source { return entity.SourceNWS }

func (failingSource) FetchCurrent(context.Context, entity.Coordinate) (*entity.WeatherSnapshot, error) {
	return nil, model.NewError(model.ErrSourceUnavailable, "Weather source nws is unavailable: 503", nil)
}

func (failingSource) FetchForecast(context.Context, entity.Coordinate) (*entity.ForecastSet, error) {
	return nil, model.NewError(model.ErrSourceUnavailable, "Weather source nws is unavailable: 503", nil)
}

type testServer struct {
	echo     *echo.Echo
	sessions session.Gateway
}

func newTestServer() *testServer {
	locations := location.NewLocationUseCase()
	namer := func(coord entity.Coordinate) string { return locations.Nearest(coord).Name }
	resultCache := cache.NewResultCache(cache.NewMemoryStore(), cache.DefaultTTLs)
	weatherUseCase := weather.NewWeatherUseCase(resultCache,
		api.NewSyntheticSource(namer, 7, time.Now),
		failingSource{},
	)
	plannerUseCase := planner.NewPlannerUseCase(weatherUseCase, locations, planner.NewRandomPicker(1),
		planner.Options{Source: entity.SourceSynthetic.String(), HorizonDays: 7})
	healthUseCase := health.NewHealthUseCase(resultCache, weatherUseCase)
	sessions := session.NewMemoryGateway(time.Hour, 50)

	e := echo.New()
	group := e.Group("")
	group.Use(middleware.Sessions(sessions))

	NewApiController(group, weatherUseCase, locations, healthUseCase).InitApiRoutes()
	NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	NewLocationController(group, locations).InitLocationRoutes()
	NewPlannerController(group, plannerUseCase).InitPlannerRoutes()
	NewSessionController(group, sessions).InitSessionRoutes()
	NewHealthController(group, healthUseCase).InitHealthRoutes()

	return &testServer{echo: e, sessions: sessions}
}

func (s *testServer) do(t *testing.T, method, target, body, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	if err := json.Unmarshal(rec.Body.Bytes(), &value); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return value
}

func TestApiHealthcheck(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodGet, "/api?request_type=healthcheck", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode[model.HealthcheckResult](t, rec)
	if body.Status != "ok" || body.Message != "Weather API is running" {
		t.Errorf("body = %+v", body)
	}
}

func TestApiWeatherIsCachedPerSource(t *testing.T) {
	server := newTestServer()
	target := "/api?request_type=weather&lat=39.7392&lon=-104.9903&source=synthetic"

	first := server.do(t, http.MethodGet, target, "", "client-1")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", first.Code, first.Body.String())
	}
	if got := first.Header().Get(middleware.SessionHeader); got != "client-1" {
		t.Errorf("session header = %q", got)
	}
	result := decode[model.WeatherResult](t, first)
	if !result.Success || result.Cached || result.Data.Location != "Denver, CO" || result.Display == nil {
		t.Fatalf("first result = %+v", result)
	}

	second := decode[model.WeatherResult](t, server.do(t, http.MethodGet, target, "", "client-1"))
	if !second.Cached || second.Data.TemperatureF != result.Data.TemperatureF {
		t.Errorf("second result = %+v", second)
	}
}

func TestApiFailures(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"bad latitude", "/api?request_type=weather&lat=north&lon=1", http.StatusBadRequest},
		{"missing coordinates", "/api?request_type=forecast", http.StatusBadRequest},
		{"unknown source", "/api?request_type=weather&lat=1&lon=1&source=accuweather", http.StatusBadRequest},
		{"unregistered source", "/api?request_type=forecast&lat=1&lon=1&source=tomorrow", http.StatusBadRequest},
		{"upstream down", "/api?request_type=weather&lat=1&lon=1&source=nws", http.StatusBadGateway},
		{"unknown request type", "/api?request_type=radar", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := server.do(t, http.MethodGet, tt.target, "", "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			body := decode[model.FailureResult](t, rec)
			if body.Success || body.Message == "" {
				t.Errorf("body = %+v", body)
			}
		})
	}
}

func TestGeocoding(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodGet, "/api?request_type=geocoding&query=donner%20lake", "", "")
	result := decode[model.GeocodingResult](t, rec)
	if rec.Code != http.StatusOK || len(result.Results) != 1 || result.Results[0].Name != "Donner Lake, CA" {
		t.Fatalf("status = %d result = %+v", rec.Code, result)
	}

	rec = server.do(t, http.MethodGet, "/locations?query=atlantis", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Errorf("failure body should carry an empty result list: %s", rec.Body.String())
	}
}

func TestCreatePlan(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodPost, "/plans", `{"location":"denver","preferences":["dining"]}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	result := decode[model.PlanResult](t, rec)
	if !result.Success || result.Plan.Location != "Denver, CO" || len(result.Schedule) != 3 {
		t.Errorf("result = %+v", result)
	}

	beyond := time.Now().AddDate(0, 0, 8).Format(entity.DateLayout)
	rec = server.do(t, http.MethodPost, "/plans", `{"location":"denver","date":"`+beyond+`"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("beyond horizon status = %d", rec.Code)
	}

	rec = server.do(t, http.MethodPost, "/plans", `{"location":"atlantis"}`, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown location status = %d", rec.Code)
	}
}

func TestPlannerMessagesAndSessionView(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodPost, "/planner/messages", `{"message":"what should I do?"}`, "chat-1")
	reply := decode[model.ChatReply](t, rec)
	if rec.Code != http.StatusOK || reply.Type != model.ReplyQuestion || reply.SessionID != "chat-1" {
		t.Fatalf("status = %d reply = %+v", rec.Code, reply)
	}

	rec = server.do(t, http.MethodPost, "/planner/messages", `{"message":"  "}`, "chat-1")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("blank message status = %d", rec.Code)
	}

	rec = server.do(t, http.MethodGet, "/sessions/chat-1", "", "")
	view := decode[model.SessionView](t, rec)
	if rec.Code != http.StatusOK || view.ID != "chat-1" || len(view.History) != 2 {
		t.Fatalf("status = %d view = %+v", rec.Code, view)
	}

	server.do(t, http.MethodDelete, "/sessions/chat-1", "", "")
	if _, ok := server.sessions.Get("chat-1"); ok {
		t.Error("session should be gone after delete")
	}
	if rec := server.do(t, http.MethodGet, "/sessions/unknown-id", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown session status = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	server := newTestServer()

	rec := server.do(t, http.MethodGet, "/health", "", "")
	body := decode[model.HealthResponse](t, rec)
	if rec.Code != http.StatusOK || body.Status != model.StatusUp {
		t.Fatalf("status = %d body = %+v", rec.Code, body)
	}
}
