package main

import (
	"context"
	"time"

	"weather-planner/internal/domain/gateway/cache"
	"weather-planner/internal/domain/gateway/session"
	"weather-planner/internal/domain/usecase/health"
	"weather-planner/internal/domain/usecase/location"
	"weather-planner/internal/domain/usecase/planner"
	"weather-planner/internal/domain/usecase/weather"
	infraredis "weather-planner/internal/infra/redis"
	infraweather "weather-planner/internal/infra/weather"
	"weather-planner/pkg/log"
	"weather-planner/pkg/redis"
	"weather-planner/pkg/resource"
)

// application holds the wired use cases shared by every command
type application struct {
	locations   location.UseCase
	weather     weather.UseCase
	planner     planner.UseCase
	health      health.UseCase
	sessions    session.Gateway
	resultCache *cache.ResultCache
	redisClient *redis.Client
}

func newApplication(ctx context.Context) (*application, error) {
	var redisClient *redis.Client
	if infraweather.UsesRedis() {
		client, err := infraredis.NewClientFromProperties(ctx)
		if err != nil {
			return nil, err
		}
		redisClient = client
	}

	locations := location.NewLocationUseCase()
	resultCache := infraweather.ResultCache(redisClient)
	weatherUseCase := weather.NewWeatherUseCase(resultCache, infraweather.Sources(locations)...)
	plannerUseCase := planner.NewPlannerUseCase(weatherUseCase, locations,
		planner.NewRandomPicker(uint64(time.Now().UnixNano())),
		planner.Options{
			Source:      resource.GetString("app.planner.source"),
			HorizonDays: resource.GetInt("app.planner.horizon-days"),
		})

	return &application{
		locations:   locations,
		weather:     weatherUseCase,
		planner:     plannerUseCase,
		health:      health.NewHealthUseCase(resultCache, weatherUseCase),
		sessions:    session.NewMemoryGateway(resource.GetDuration("app.session.idle-ttl"), resource.GetInt("app.session.trail-size")),
		resultCache: resultCache,
		redisClient: redisClient,
	}, nil
}

func (app *application) Close() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			log.Warnf("failed to close redis client: %v", err)
		}
	}
}
