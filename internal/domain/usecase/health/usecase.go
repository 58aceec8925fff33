package health

import (
	"context"

	"weather-planner/internal/domain/model"
)

type UseCase interface {
	// CheckHealth reports the cache backend and the weather sources
	CheckHealth(ctx context.Context) model.HealthResponse

	// Healthcheck is the static liveness answer
	Healthcheck() model.HealthcheckResult
}
