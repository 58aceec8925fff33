package weather

import (
	"context"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/gateway/api"
	"weather-planner/internal/domain/gateway/cache"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
)

type weatherUseCase struct {
	sources map[entity.Source]api.WeatherSource
	cache   *cache.ResultCache
	now     func() time.Time
}

func NewWeatherUseCase(resultCache *cache.ResultCache, sources ...api.WeatherSource) UseCase {
	registered := make(map[entity.Source]api.WeatherSource, len(sources))
	for _, source := range sources {
		registered[source.Source()] = source
	}
	return &weatherUseCase{sources: registered, cache: resultCache, now: time.Now}
}

// source parses the key and checks it is registered before anything touches the network
func (uc *weatherUseCase) source(key string) (api.WeatherSource, error) {
	parsed, err := entity.ParseSource(key)
	if err != nil {
		return nil, model.NewError(model.ErrUnknownSource, msg.GetMessage("weather.unknown-source", key), err)
	}
	source, ok := uc.sources[parsed]
	if !ok {
		return nil, model.NewError(model.ErrUnknownSource, msg.GetMessage("weather.unknown-source", key), nil)
	}
	return source, nil
}

func validate(coord entity.Coordinate) error {
	if !coord.Valid() {
		return model.NewError(model.ErrInvalidRequest, msg.GetMessage("request.invalid-coordinates"), nil)
	}
	return nil
}

func (uc *weatherUseCase) trace(session *entity.Session, key string, args ...interface{}) {
	message := msg.GetMessage(key, args...)
	log.Debug(message)
	session.Record(uc.now(), message)
}

func (uc *weatherUseCase) GetCurrent(ctx context.Context, session *entity.Session, coord entity.Coordinate, sourceKey string) (*entity.WeatherSnapshot, bool, error) {
	source, err := uc.source(sourceKey)
	if err != nil {
		return nil, false, err
	}
	if err := validate(coord); err != nil {
		return nil, false, err
	}

	key := cache.NewKey(source.Source(), cache.KindCurrent, coord)
	snapshot, cached, err := cache.GetOrFetch(ctx, uc.cache, key, func(ctx context.Context) (*entity.WeatherSnapshot, error) {
		uc.trace(session, "weather.fetching", cache.KindCurrent, coord, source.Source().DisplayName())
		return source.FetchCurrent(ctx, coord)
	})
	if err != nil {
		session.Record(uc.now(), model.UserMessage(err))
		return nil, false, err
	}
	if cached {
		uc.trace(session, "weather.cache-hit", cache.KindCurrent, coord)
	}
	return snapshot, cached, nil
}

func (uc *weatherUseCase) GetForecast(ctx context.Context, session *entity.Session, coord entity.Coordinate, sourceKey string) (*entity.ForecastSet, bool, error) {
	source, err := uc.source(sourceKey)
	if err != nil {
		return nil, false, err
	}
	if err := validate(coord); err != nil {
		return nil, false, err
	}

	key := cache.NewKey(source.Source(), cache.KindForecast, coord)
	forecast, cached, err := cache.GetOrFetch(ctx, uc.cache, key, func(ctx context.Context) (*entity.ForecastSet, error) {
		uc.trace(session, "weather.fetching", cache.KindForecast, coord, source.Source().DisplayName())
		return source.FetchForecast(ctx, coord)
	})
	if err != nil {
		session.Record(uc.now(), model.UserMessage(err))
		return nil, false, err
	}
	if cached {
		uc.trace(session, "weather.cache-hit", cache.KindForecast, coord)
	}
	return forecast, cached, nil
}

func (uc *weatherUseCase) Sources() []model.SourceInfo {
	infos := make([]model.SourceInfo, 0, len(uc.sources))
	for _, source := range entity.Sources {
		if _, ok := uc.sources[source]; ok {
			infos = append(infos, model.SourceInfo{Key: source.String(), DisplayName: source.DisplayName()})
		}
	}
	return infos
}

type breakerState interface {
	State() string
}

// SourceHealth is DOWN only when every registered source has an open circuit
func (uc *weatherUseCase) SourceHealth() model.ComponentHealthStatus {
	details := make(map[string]string, len(uc.sources))
	open := 0
	for key, source := range uc.sources {
		state := "closed"
		if guarded, ok := source.(breakerState); ok {
			state = guarded.State()
		}
		if state == "open" {
			open++
		}
		details[key.String()] = state
	}

	status := model.StatusUp
	if len(uc.sources) == 0 || open == len(uc.sources) {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
