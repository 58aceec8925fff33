package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
)

type stubSource struct {
	calls int
	err   error
}

func (s *stubSource) Source() entity.Source { return entity.SourceNWS }

func (s *stubSource) FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &entity.WeatherSnapshot{Source: entity.SourceNWS, Coordinate: coord}, nil
}

func (s *stubSource) FetchForecast(ctx context.Context, coord entity.Coordinate) (*entity.ForecastSet, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ForecastSet{Source: entity.SourceNWS, Coordinate: coord}, nil
}

func TestGuardedSourceOpensAfterConsecutiveFailures(t *testing.T) {
	stub := &stubSource{err: model.NewError(model.ErrSourceUnavailable, "down", nil)}
	guarded := NewGuardedSource(stub, GuardOptions{ConsecutiveFailures: 2, Timeout: time.Minute})

	for i := 0; i < 2; i++ {
		if _, err := guarded.FetchCurrent(context.Background(), newYork); !errors.Is(err, model.ErrSourceUnavailable) {
			t.Fatalf("call %d: err = %v", i, err)
		}
	}
	if guarded.State() != "open" {
		t.Fatalf("state = %s, want open", guarded.State())
	}

	_, err := guarded.FetchForecast(context.Background(), newYork)
	if !errors.Is(err, model.ErrSourceUnavailable) {
		t.Fatalf("open breaker err = %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("open breaker should not reach the source, calls = %d", stub.calls)
	}
}

func TestGuardedSourceIgnoresMalformedResponses(t *testing.T) {
	stub := &stubSource{err: model.NewError(model.ErrMalformedResponse, "bad body", nil)}
	guarded := NewGuardedSource(stub, GuardOptions{ConsecutiveFailures: 1, Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		if _, err := guarded.FetchCurrent(context.Background(), newYork); !errors.Is(err, model.ErrMalformedResponse) {
			t.Fatalf("call %d: err = %v", i, err)
		}
	}
	if guarded.State() != "closed" {
		t.Errorf("state = %s, want closed", guarded.State())
	}
}

func TestGuardedSourcePassesResults(t *testing.T) {
	stub := &stubSource{}
	guarded := NewGuardedSource(stub, GuardOptions{Rate: 100, Burst: 1})

	snapshot, err := guarded.FetchCurrent(context.Background(), newYork)
	if err != nil || snapshot.Coordinate != newYork {
		t.Fatalf("FetchCurrent = %+v, %v", snapshot, err)
	}
	if guarded.Source() != entity.SourceNWS {
		t.Errorf("source = %s", guarded.Source())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := guarded.FetchForecast(ctx, newYork); !errors.Is(err, model.ErrSourceUnavailable) {
		t.Errorf("cancelled wait err = %v", err)
	}
}
