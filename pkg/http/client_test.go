package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type recordingLogger struct {
	requests  []string
	successes int
	failures  int
}

func (l *recordingLogger) LogRequest(method, url string, headers map[string]string, body string) {
	l.requests = append(l.requests, url)
}

func (l *recordingLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	l.successes++
}

func (l *recordingLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	l.failures++
}

type payload struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestExecuteDecodesSuccessResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/weather/realtime" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("location"); got != "39.328,-120.1833" {
			t.Errorf("location query = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "tester" {
			t.Errorf("user agent = %q", got)
		}
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(`{"name":"ok","value":7}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/", ClientOptions{
		DefaultHeaders: map[string]string{"User-Agent": "tester"},
		Logger:         logger,
	})

	resp, errResp, status, err := client.Request().
		WithPath("v4/weather/realtime").
		WithQueryParam("location", "39.328,-120.1833").
		WithQueryParam("apikey", "secret").
		WithSuccessResp(&payload{}).
		Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errResp != nil {
		t.Fatalf("unexpected error response: %v", errResp)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	got := resp.(*payload)
	if got.Name != "ok" || got.Value != 7 {
		t.Fatalf("decoded %+v", got)
	}
	if logger.successes != 1 || logger.failures != 0 {
		t.Fatalf("logger saw %d successes and %d failures", logger.successes, logger.failures)
	}
	if len(logger.requests) != 1 || !strings.Contains(logger.requests[0], "apikey=%2A%2A%2A") {
		t.Fatalf("api key was not redacted in %v", logger.requests)
	}
}

func TestExecuteReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"name":"down"}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Logger: &recordingLogger{}})
	_, errResp, status, err := client.Request().
		WithPath("/points/1,2").
		WithSuccessResp(&payload{}).
		WithErrorResp(&payload{}).
		Execute()

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusServiceUnavailable || status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d / %d", statusErr.StatusCode, status)
	}
	if errResp.(*payload).Name != "down" {
		t.Fatalf("error response not decoded: %+v", errResp)
	}
}

func TestExecuteHonoursAbsoluteURLAndContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewHttpClient("http://unused.invalid", ClientOptions{Logger: &recordingLogger{}})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, _, err := client.Request().
		WithContext(ctx).
		WithPath(server.URL + "/gridpoints/STO/1,2/forecast").
		Execute()
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
