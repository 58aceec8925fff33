package health

import (
	"context"

	"weather-planner/internal/domain/model"
	"weather-planner/pkg/msg"
)

// CacheProbe is satisfied by cache.ResultCache
type CacheProbe interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// SourceProbe is satisfied by weather.UseCase
type SourceProbe interface {
	SourceHealth() model.ComponentHealthStatus
}

type healthUseCase struct {
	cache   CacheProbe
	sources SourceProbe
}

func NewHealthUseCase(cache CacheProbe, sources SourceProbe) UseCase {
	return &healthUseCase{
		cache:   cache,
		sources: sources,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	cacheHealth := useCase.cache.Health(ctx)
	sourceHealth := useCase.sources.SourceHealth()

	overallStatus := model.StatusUp
	if cacheHealth.Status != model.StatusUp || sourceHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:  overallStatus,
		Cache:   cacheHealth,
		Sources: sourceHealth,
	}
}

func (useCase *healthUseCase) Healthcheck() model.HealthcheckResult {
	return model.HealthcheckResult{Status: "ok", Message: msg.GetMessage("health.ok")}
}
