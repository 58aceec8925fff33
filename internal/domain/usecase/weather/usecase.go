package weather

import (
	"context"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
)

type UseCase interface {
	// GetCurrent returns current conditions at coord from source, served from the cache while fresh.
	// cached reports whether the cache answered.
	GetCurrent(ctx context.Context, session *entity.Session, coord entity.Coordinate, source string) (snapshot *entity.WeatherSnapshot, cached bool, err error)

	// GetForecast returns the daily and hourly forecast at coord from source, served from the cache while fresh
	GetForecast(ctx context.Context, session *entity.Session, coord entity.Coordinate, source string) (forecast *entity.ForecastSet, cached bool, err error)

	// Display formats a snapshot for the viewer
	Display(snapshot *entity.WeatherSnapshot) *model.WeatherDisplay

	// Sources lists the registered sources in display order
	Sources() []model.SourceInfo

	// SourceHealth reports each source's circuit state
	SourceHealth() model.ComponentHealthStatus
}
