package api

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
)

// GuardOptions configures the limiter and breaker around one source
type GuardOptions struct {
	Rate                float64
	Burst               int
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// GuardedSource wraps a WeatherSource with a token-bucket limiter and a circuit breaker.
// Only ErrSourceUnavailable trips the breaker; a malformed body still proves the upstream is reachable.
type GuardedSource struct {
	source  WeatherSource
	limiter *rate.Limiter
	circuit *gobreaker.CircuitBreaker
}

// NewGuardedSource wraps source. A zero Rate disables limiting.
func NewGuardedSource(source WeatherSource, options GuardOptions) *GuardedSource {
	limit := rate.Inf
	if options.Rate > 0 {
		limit = rate.Limit(options.Rate)
	}
	if options.Burst <= 0 {
		options.Burst = 1
	}
	if options.ConsecutiveFailures == 0 {
		options.ConsecutiveFailures = 5
	}
	failures := options.ConsecutiveFailures

	circuit := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        source.Source().String(),
		MaxRequests: options.MaxRequests,
		Interval:    options.Interval,
		Timeout:     options.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, model.ErrSourceUnavailable) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("circuit breaker state changed", "source", name, "from", from.String(), "to", to.String())
		},
	})

	return &GuardedSource{
		source:  source,
		limiter: rate.NewLimiter(limit, options.Burst),
		circuit: circuit,
	}
}

func (g *GuardedSource) Source() entity.Source {
	return g.source.Source()
}

// State reports the breaker state: closed, half-open or open
func (g *GuardedSource) State() string {
	return g.circuit.State().String()
}

func (g *GuardedSource) FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	result, err := g.execute(ctx, func() (interface{}, error) {
		return g.source.FetchCurrent(ctx, coord)
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.WeatherSnapshot), nil
}

func (g *GuardedSource) FetchForecast(ctx context.Context, coord entity.Coordinate) (*entity.ForecastSet, error) {
	result, err := g.execute(ctx, func() (interface{}, error) {
		return g.source.FetchForecast(ctx, coord)
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.ForecastSet), nil
}

func (g *GuardedSource) execute(ctx context.Context, fetch func() (interface{}, error)) (interface{}, error) {
	source := g.source.Source()

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, model.NewError(model.ErrSourceUnavailable,
			msg.GetMessage("weather.source-unavailable", source, "rate limit wait canceled"), err)
	}

	result, err := g.circuit.Execute(fetch)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, model.NewError(model.ErrSourceUnavailable, msg.GetMessage("weather.circuit-open", source), err)
	}
	return result, err
}
