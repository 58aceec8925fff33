package api

import (
	"context"
	"errors"
	"fmt"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/http"
	"weather-planner/pkg/msg"
)

// WeatherSource fetches and normalizes weather from one upstream provider
type WeatherSource interface {
	// Source returns the key this provider is registered under
	Source() entity.Source

	// FetchCurrent returns current conditions at coord
	FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error)

	// FetchForecast returns the daily and hourly forecast at coord
	FetchForecast(ctx context.Context, coord entity.Coordinate) (*entity.ForecastSet, error)
}

// upstreamError classifies an error returned by pkg/http for source.
// A 2xx status with an error means the body could not be decoded.
func upstreamError(source entity.Source, status int, err error) error {
	if status >= 200 && status < 300 {
		return malformed(source, err.Error())
	}
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return model.NewError(model.ErrSourceUnavailable,
			msg.GetMessage("weather.source-unavailable", source, fmt.Sprintf("status %d", statusErr.StatusCode)), err)
	}
	return model.NewError(model.ErrSourceUnavailable,
		msg.GetMessage("weather.source-unavailable", source, err), err)
}

func malformed(source entity.Source, detail string) error {
	return model.NewError(model.ErrMalformedResponse, msg.GetMessage("weather.malformed", source, detail), nil)
}
