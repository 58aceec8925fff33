package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-planner/internal/domain/usecase/location"
	"weather-planner/internal/domain/usecase/weather"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
	"weather-planner/pkg/redis"
)

const warmerLockKey = "forecast_warmer"

// ForecastWarmerConfig holds configuration for the forecast warmer
type ForecastWarmerConfig struct {
	CronExpression string
	Source         string
	LockTTL        time.Duration
}

// ForecastWarmer refreshes the planner source forecast for every catalog location on a schedule.
// With a redis client the run holds a distributed lock so only one replica warms at a time.
type ForecastWarmer struct {
	cron        *cron.Cron
	weather     weather.UseCase
	locations   location.UseCase
	redisClient *redis.Client
	config      ForecastWarmerConfig
}

// NewForecastWarmer creates the warmer. redisClient may be nil when the memory cache backend is used.
func NewForecastWarmer(weatherUseCase weather.UseCase, locations location.UseCase, redisClient *redis.Client, config ForecastWarmerConfig) *ForecastWarmer {
	if config.CronExpression == "" {
		config.CronExpression = "@every 30m"
	}
	if config.LockTTL <= 0 {
		config.LockTTL = 5 * time.Minute
	}
	return &ForecastWarmer{
		cron:        cron.New(),
		weather:     weatherUseCase,
		locations:   locations,
		redisClient: redisClient,
		config:      config,
	}
}

// InitForecastWarmerTasks schedules the warm run and starts the cron
func (w *ForecastWarmer) InitForecastWarmerTasks(ctx context.Context) error {
	_, err := w.cron.AddFunc(w.config.CronExpression, func() {
		w.ExecuteScheduledTask(ctx)
	})
	if err != nil {
		return err
	}

	w.cron.Start()
	log.Info(msg.GetMessage("warmer.started", w.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one warm pass, under the redis lock when one is configured
func (w *ForecastWarmer) ExecuteScheduledTask(ctx context.Context) {
	runID := uuid.New().String()

	if w.redisClient == nil {
		w.Warm(ctx, runID)
		return
	}

	err := redis.LockWithFunc(ctx, w.redisClient, warmerLockKey, w.config.LockTTL, func() error {
		w.Warm(ctx, runID)
		return nil
	})
	if errors.Is(err, redis.ErrLockHeld) {
		log.Info(msg.GetMessage("warmer.skipped", runID, err), zap.String("request_id", runID))
		return
	}
	if err != nil {
		log.Error(msg.GetMessage("warmer.skipped", runID, err), zap.String("request_id", runID), zap.Error(err))
	}
}

// Warm fetches the forecast of every catalog location and returns how many succeeded
func (w *ForecastWarmer) Warm(ctx context.Context, runID string) int {
	catalog := w.locations.Catalog()
	refreshed := 0
	for _, place := range catalog {
		if ctx.Err() != nil {
			break
		}
		if _, _, err := w.weather.GetForecast(ctx, nil, place.Coordinate, w.config.Source); err != nil {
			log.Warn(msg.GetMessage("warmer.failed", place.Name, err), zap.String("request_id", runID))
			continue
		}
		refreshed++
	}

	log.Info(msg.GetMessage("warmer.done", runID, refreshed, len(catalog)), zap.String("request_id", runID))
	return refreshed
}

// Stop gracefully stops the scheduler
func (w *ForecastWarmer) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}
