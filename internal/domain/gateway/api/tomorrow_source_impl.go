package api

import (
	"context"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/model/external"
	"weather-planner/pkg/http"
	"weather-planner/pkg/msg"
)

// tomorrowSourceImpl implements WeatherSource over the Tomorrow.io v4 API.
// Requests use metric units; Fahrenheit and mph are derived for display.
type tomorrowSourceImpl struct {
	httpClient *http.Client
	apiKey     string
	now        func() time.Time
}

// NewTomorrowSource creates the Tomorrow.io source. The API key travels in the query string.
func NewTomorrowSource(baseURL, apiKey string, clientOptions http.ClientOptions) WeatherSource {
	return &tomorrowSourceImpl{
		httpClient: http.NewHttpClient(baseURL, clientOptions),
		apiKey:     apiKey,
		now:        time.Now,
	}
}

func (s *tomorrowSourceImpl) Source() entity.Source {
	return entity.SourceTomorrow
}

func (s *tomorrowSourceImpl) request(ctx context.Context, path string, coord entity.Coordinate) *http.Request {
	return s.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithQueryParam("location", coord.String()).
		WithQueryParam("units", "metric").
		WithQueryParam("apikey", s.apiKey).
		WithErrorResp(&external.TomorrowErrorResponse{})
}

func (s *tomorrowSourceImpl) checkKey() error {
	if s.apiKey == "" {
		return model.NewError(model.ErrSourceUnavailable,
			msg.GetMessage("weather.source-unavailable", entity.SourceTomorrow, "no API key configured"), nil)
	}
	return nil
}

// FetchCurrent calls /v4/weather/realtime
func (s *tomorrowSourceImpl) FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	successResp, _, status, err := s.request(ctx, "/v4/weather/realtime", coord).
		WithSuccessResp(&external.TomorrowRealtimeResponse{}).
		Execute()
	if err != nil {
		return nil, upstreamError(entity.SourceTomorrow, status, err)
	}

	realtime := successResp.(*external.TomorrowRealtimeResponse)
	if realtime.Data == nil || realtime.Data.Values == nil {
		return nil, malformed(entity.SourceTomorrow, "realtime response has no data.values")
	}
	values := realtime.Data.Values
	if values.Temperature == nil || values.WeatherCode == nil {
		return nil, malformed(entity.SourceTomorrow, "realtime values lack temperature or weatherCode")
	}

	probability := valueOr(values.PrecipitationProbability, 0)
	precipitationCode := 0
	if values.PrecipitationType != nil {
		precipitationCode = *values.PrecipitationType
	}

	snapshot := &entity.WeatherSnapshot{
		Source:                   entity.SourceTomorrow,
		Location:                 coordinateLabel(coord),
		Coordinate:               coord,
		ObservedAt:               parseTimeOr(realtime.Data.Time, s.now()),
		TemperatureF:             CelsiusToFahrenheit(*values.Temperature),
		ConditionText:            WeatherText(*values.WeatherCode),
		WindSpeed:                MetersPerSecondToMph(valueOr(values.WindSpeed, 0)),
		WindDirection:            CompassPoint(valueOr(values.WindDirection, 0)),
		PrecipitationProbability: clampProbability(probability),
		PrecipitationType:        TomorrowPrecipitationType(precipitationCode, probability),
		Humidity:                 values.Humidity,
		UVIndex:                  values.UVIndex,
		Visibility:               values.Visibility,
		CloudCover:               values.CloudCover,
		TemperatureC:             values.Temperature,
		FeelsLikeC:               values.TemperatureApparent,
		WeatherCode:              values.WeatherCode,
		PrecipitationTypeCode:    ptr(precipitationCode),
	}
	if values.TemperatureApparent != nil {
		snapshot.FeelsLikeF = ptr(CelsiusToFahrenheit(*values.TemperatureApparent))
	}
	if values.WindGust != nil {
		snapshot.WindGust = ptr(MetersPerSecondToMph(*values.WindGust))
	}
	return snapshot, nil
}

// FetchForecast calls /v4/weather/forecast. Daily entries are keyed by their UTC date.
func (s *tomorrowSourceImpl) FetchForecast(ctx context.Context, coord entity.Coordinate) (*entity.ForecastSet, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	successResp, _, status, err := s.request(ctx, "/v4/weather/forecast", coord).
		WithSuccessResp(&external.TomorrowForecastResponse{}).
		Execute()
	if err != nil {
		return nil, upstreamError(entity.SourceTomorrow, status, err)
	}

	forecast := successResp.(*external.TomorrowForecastResponse)
	if forecast.Timelines == nil {
		return nil, malformed(entity.SourceTomorrow, "forecast response has no timelines")
	}

	daily := make([]entity.DayForecast, 0, len(forecast.Timelines.Daily))
	for _, interval := range forecast.Timelines.Daily {
		day, err := tomorrowDay(interval)
		if err != nil {
			return nil, err
		}
		daily = append(daily, day)
	}

	hourly := make([]entity.HourForecast, 0, len(forecast.Timelines.Hourly))
	for _, interval := range forecast.Timelines.Hourly {
		hour, err := tomorrowHour(interval)
		if err != nil {
			return nil, err
		}
		hourly = append(hourly, hour)
	}

	return &entity.ForecastSet{
		Source:     entity.SourceTomorrow,
		Location:   coordinateLabel(coord),
		Coordinate: coord,
		Daily:      daily,
		Hourly:     hourly,
	}, nil
}

func tomorrowDay(interval external.TomorrowDailyInterval) (entity.DayForecast, error) {
	startTime, err := time.Parse(time.RFC3339, interval.Time)
	if err != nil {
		return entity.DayForecast{}, malformed(entity.SourceTomorrow, "daily interval has invalid time")
	}
	values := interval.Values
	if values.TemperatureMin == nil || values.TemperatureMax == nil {
		return entity.DayForecast{}, malformed(entity.SourceTomorrow, "daily interval lacks temperatureMin or temperatureMax")
	}

	code := 1001
	if values.WeatherCodeMax != nil {
		code = *values.WeatherCodeMax
	}

	return entity.DayForecast{
		Date:                     startTime.UTC().Format(entity.DateLayout),
		TempMinF:                 CelsiusToFahrenheit(*values.TemperatureMin),
		TempMaxF:                 CelsiusToFahrenheit(*values.TemperatureMax),
		ConditionText:            WeatherText(code),
		PrecipitationProbability: clampPercent(valueOr(values.PrecipitationProbabilityAvg, 0)),
		WindSpeed:                MetersPerSecondToMph(valueOr(values.WindSpeedAvg, 0)),
		WindDirection:            CompassPoint(valueOr(values.WindDirectionAvg, 0)),
		TempMinC:                 values.TemperatureMin,
		TempMaxC:                 values.TemperatureMax,
		WeatherCode:              ptr(code),
	}, nil
}

func tomorrowHour(interval external.TomorrowHourlyInterval) (entity.HourForecast, error) {
	startTime, err := time.Parse(time.RFC3339, interval.Time)
	if err != nil {
		return entity.HourForecast{}, malformed(entity.SourceTomorrow, "hourly interval has invalid time")
	}
	values := interval.Values
	if values.Temperature == nil {
		return entity.HourForecast{}, malformed(entity.SourceTomorrow, "hourly interval lacks temperature")
	}

	code := 1001
	if values.WeatherCode != nil {
		code = *values.WeatherCode
	}

	return entity.HourForecast{
		Time:                     startTime,
		TemperatureF:             CelsiusToFahrenheit(*values.Temperature),
		ConditionText:            WeatherText(code),
		PrecipitationProbability: clampProbability(valueOr(values.PrecipitationProbability, 0)),
		WindSpeed:                MetersPerSecondToMph(valueOr(values.WindSpeed, 0)),
		WindDirection:            CompassPoint(valueOr(values.WindDirection, 0)),
		TemperatureC:             values.Temperature,
		WeatherCode:              ptr(code),
	}, nil
}
