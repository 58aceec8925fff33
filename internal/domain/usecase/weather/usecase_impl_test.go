package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/gateway/api"
	"weather-planner/internal/domain/gateway/cache"
	"weather-planner/internal/domain/model"
)

type fakeSource struct {
	key       entity.Source
	current   int
	forecasts int
	err       error
}

func (f *fakeSource) Source() entity.Source { return f.key }

func (f *fakeSource) FetchCurrent(_ context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	f.current++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.WeatherSnapshot{Source: f.key, Coordinate: coord, TemperatureF: 70}, nil
}

func (f *fakeSource) FetchForecast(_ context.Context, coord entity.Coordinate) (*entity.ForecastSet, error) {
	f.forecasts++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.ForecastSet{Source: f.key, Coordinate: coord}, nil
}

var denver = entity.Coordinate{Latitude: 39.7392, Longitude: -104.9903}

func newUseCase(sources ...*fakeSource) UseCase {
	resultCache := cache.NewResultCache(cache.NewMemoryStore(), cache.DefaultTTLs)
	registered := make([]api.WeatherSource, 0, len(sources))
	for _, source := range sources {
		registered = append(registered, source)
	}
	return NewWeatherUseCase(resultCache, registered...)
}

func TestGetCurrentUsesCache(t *testing.T) {
	source := &fakeSource{key: entity.SourceTomorrow}
	uc := newUseCase(source)
	session := entity.NewSession("s", time.Now(), 50)

	if _, cached, err := uc.GetCurrent(context.Background(), session, denver, "tomorrow"); err != nil || cached {
		t.Fatalf("first call cached=%v err=%v", cached, err)
	}
	snapshot, cached, err := uc.GetCurrent(context.Background(), session, denver, "TOMORROW")
	if err != nil || !cached || snapshot.TemperatureF != 70 {
		t.Fatalf("second call = %+v cached=%v err=%v", snapshot, cached, err)
	}
	if source.current != 1 {
		t.Fatalf("source called %d times", source.current)
	}
	if len(session.Trail()) != 2 {
		t.Errorf("trail = %+v", session.Trail())
	}
}

func TestUnknownSourceIsRejectedBeforeFetching(t *testing.T) {
	source := &fakeSource{key: entity.SourceNWS}
	uc := newUseCase(source)

	for _, key := range []string{"accuweather", "tomorrow", ""} {
		if _, _, err := uc.GetForecast(context.Background(), nil, denver, key); !errors.Is(err, model.ErrUnknownSource) {
			t.Errorf("source %q err = %v", key, err)
		}
	}
	if source.forecasts != 0 {
		t.Fatal("no fetch should happen for an unknown source")
	}
}

func TestInvalidCoordinates(t *testing.T) {
	uc := newUseCase(&fakeSource{key: entity.SourceNWS})
	_, _, err := uc.GetCurrent(context.Background(), nil, entity.Coordinate{Latitude: 91}, "nws")
	if !errors.Is(err, model.ErrInvalidRequest) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpstreamFailuresPropagate(t *testing.T) {
	source := &fakeSource{key: entity.SourceNWS, err: model.NewError(model.ErrSourceUnavailable, "down", nil)}
	uc := newUseCase(source)
	session := entity.NewSession("s", time.Now(), 50)

	for i := 0; i < 2; i++ {
		if _, _, err := uc.GetForecast(context.Background(), session, denver, "nws"); !errors.Is(err, model.ErrSourceUnavailable) {
			t.Fatalf("err = %v", err)
		}
	}
	if source.forecasts != 2 {
		t.Fatalf("failures must not be cached, calls = %d", source.forecasts)
	}
}

func TestSourcesAndHealth(t *testing.T) {
	uc := newUseCase(&fakeSource{key: entity.SourceSynthetic}, &fakeSource{key: entity.SourceTomorrow})

	sources := uc.Sources()
	if len(sources) != 2 || sources[0].Key != "tomorrow" || sources[1].DisplayName != "Synthetic" {
		t.Fatalf("sources = %+v", sources)
	}

	health := uc.SourceHealth()
	if health.Status != model.StatusUp || health.Details["tomorrow"] != "closed" {
		t.Fatalf("health = %+v", health)
	}
}

func TestFormatDisplay(t *testing.T) {
	feelsLike := 70
	humidity := 61.4
	rain := entity.PrecipitationRain
	display := FormatDisplay(&entity.WeatherSnapshot{
		Source:                   entity.SourceTomorrow,
		Location:                 "Lat: 40.7128, Lon: -74.0060",
		TemperatureF:             72,
		FeelsLikeF:               &feelsLike,
		ConditionText:            "Partly Cloudy",
		WindSpeed:                11.2,
		WindDirection:            "NW",
		PrecipitationProbability: 40,
		PrecipitationType:        &rain,
		Humidity:                 &humidity,
	})

	if display.Temperature != "72°F (Feels like: 70°F)" {
		t.Errorf("temperature = %q", display.Temperature)
	}
	if display.Wind != "11 mph NW" || display.Precipitation != "40%" || display.Humidity != "61%" {
		t.Errorf("unexpected display %+v", display)
	}
	if display.PrecipitationType != "rain" || display.Source != "Tomorrow.io" {
		t.Errorf("unexpected display %+v", display)
	}
	if FormatDisplay(nil) != nil {
		t.Error("nil snapshot should format to nil")
	}
}
