package api

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model/external"
	"weather-planner/pkg/http"
	"weather-planner/pkg/util/numberutils"
)

// nwsSourceImpl implements WeatherSource over api.weather.gov
type nwsSourceImpl struct {
	httpClient  *http.Client
	hourlyLimit int
	now         func() time.Time
}

// NewNWSSource creates the National Weather Service source. NWS requires a User-Agent.
func NewNWSSource(baseURL, userAgent string, hourlyLimit int, clientOptions http.ClientOptions) WeatherSource {
	headers := map[string]string{"Accept": "application/geo+json"}
	for key, value := range clientOptions.DefaultHeaders {
		headers[key] = value
	}
	if userAgent != "" {
		headers["User-Agent"] = userAgent
	}
	clientOptions.DefaultHeaders = headers
	clientOptions.FollowRedirect = true

	if hourlyLimit <= 0 {
		hourlyLimit = 24
	}

	return &nwsSourceImpl{
		httpClient:  http.NewHttpClient(baseURL, clientOptions),
		hourlyLimit: hourlyLimit,
		now:         time.Now,
	}
}

func (s *nwsSourceImpl) Source() entity.Source {
	return entity.SourceNWS
}

// nwsBundle is what one round of NWS calls produces
type nwsBundle struct {
	location string
	daily    []external.NWSPeriod
	hourly   []external.NWSPeriod
}

// FetchCurrent resolves the point, then reads the first forecast period
func (s *nwsSourceImpl) FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	bundle, err := s.fetch(ctx, coord)
	if err != nil {
		return nil, err
	}

	current := bundle.daily[0]
	if current.Temperature == nil {
		return nil, malformed(entity.SourceNWS, "current period has no temperature")
	}

	temperatureF := nwsFahrenheit(current)
	snapshot := &entity.WeatherSnapshot{
		Source:                   entity.SourceNWS,
		Location:                 bundle.location,
		Coordinate:               coord,
		ObservedAt:               parseTimeOr(current.StartTime, s.now()),
		TemperatureF:             temperatureF,
		ConditionText:            current.ShortForecast,
		WindSpeed:                nwsWindSpeed(current.WindSpeed),
		WindDirection:            current.WindDirection,
		PrecipitationProbability: nwsProbability(current),
		PrecipitationType:        NWSPrecipitationType(current.DetailedForecast, current.ShortForecast, nwsProbability(current), temperatureF),
		DetailedForecast:         current.DetailedForecast,
		Icon:                     current.Icon,
		Alerts:                   []string{},
	}
	return snapshot, nil
}

// FetchForecast groups forecast periods by calendar date and keeps the first hourly periods
func (s *nwsSourceImpl) FetchForecast(ctx context.Context, coord entity.Coordinate) (*entity.ForecastSet, error) {
	bundle, err := s.fetch(ctx, coord)
	if err != nil {
		return nil, err
	}

	daily, err := groupNWSPeriods(bundle.daily)
	if err != nil {
		return nil, err
	}

	hourlyPeriods := bundle.hourly
	if len(hourlyPeriods) > s.hourlyLimit {
		hourlyPeriods = hourlyPeriods[:s.hourlyLimit]
	}
	hourly := make([]entity.HourForecast, 0, len(hourlyPeriods))
	for _, period := range hourlyPeriods {
		if period.Temperature == nil {
			return nil, malformed(entity.SourceNWS, "hourly period has no temperature")
		}
		startTime, err := time.Parse(time.RFC3339, period.StartTime)
		if err != nil {
			return nil, malformed(entity.SourceNWS, "hourly period has invalid startTime")
		}
		hourly = append(hourly, entity.HourForecast{
			Time:                     startTime,
			TemperatureF:             nwsFahrenheit(period),
			ConditionText:            period.ShortForecast,
			PrecipitationProbability: nwsProbability(period),
			WindSpeed:                nwsWindSpeed(period.WindSpeed),
			WindDirection:            period.WindDirection,
		})
	}

	return &entity.ForecastSet{
		Source:     entity.SourceNWS,
		Location:   bundle.location,
		Coordinate: coord,
		Daily:      daily,
		Hourly:     hourly,
	}, nil
}

// fetch calls /points, then the forecast and hourly forecast URLs it returns
func (s *nwsSourceImpl) fetch(ctx context.Context, coord entity.Coordinate) (*nwsBundle, error) {
	path := fmt.Sprintf("/points/%s,%s", formatNWSCoordinate(coord.Latitude), formatNWSCoordinate(coord.Longitude))

	successResp, _, status, err := s.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(path).
		WithSuccessResp(&external.NWSPointResponse{}).
		WithErrorResp(&external.NWSErrorResponse{}).
		Execute()
	if err != nil {
		return nil, upstreamError(entity.SourceNWS, status, err)
	}

	point := successResp.(*external.NWSPointResponse)
	if point.Properties.Forecast == "" || point.Properties.ForecastHourly == "" {
		return nil, malformed(entity.SourceNWS, "point has no forecast URLs")
	}

	forecast, err := s.fetchPeriods(ctx, point.Properties.Forecast)
	if err != nil {
		return nil, err
	}
	if len(forecast) == 0 {
		return nil, malformed(entity.SourceNWS, "forecast has no periods")
	}

	hourly, err := s.fetchPeriods(ctx, point.Properties.ForecastHourly)
	if err != nil {
		return nil, err
	}

	location := coordinateLabel(coord)
	relative := point.Properties.RelativeLocation.Properties
	if relative.City != "" {
		location = relative.City
		if relative.State != "" {
			location += ", " + relative.State
		}
	}

	return &nwsBundle{location: location, daily: forecast, hourly: hourly}, nil
}

func (s *nwsSourceImpl) fetchPeriods(ctx context.Context, url string) ([]external.NWSPeriod, error) {
	successResp, _, status, err := s.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(url).
		WithSuccessResp(&external.NWSForecastResponse{}).
		WithErrorResp(&external.NWSErrorResponse{}).
		Execute()
	if err != nil {
		return nil, upstreamError(entity.SourceNWS, status, err)
	}
	return successResp.(*external.NWSForecastResponse).Properties.Periods, nil
}

// groupNWSPeriods folds day and night periods into one DayForecast per date
func groupNWSPeriods(periods []external.NWSPeriod) ([]entity.DayForecast, error) {
	var (
		days    []entity.DayForecast
		hasDay  = map[string]bool{}
		indexOf = map[string]int{}
	)

	for _, period := range periods {
		if period.Temperature == nil {
			return nil, malformed(entity.SourceNWS, "forecast period has no temperature")
		}
		startTime, err := time.Parse(time.RFC3339, period.StartTime)
		if err != nil {
			return nil, malformed(entity.SourceNWS, "forecast period has invalid startTime")
		}
		date := startTime.Format(entity.DateLayout)
		temperature := nwsFahrenheit(period)
		probability := nwsProbability(period)

		idx, seen := indexOf[date]
		if !seen {
			indexOf[date] = len(days)
			hasDay[date] = period.IsDaytime
			days = append(days, entity.DayForecast{
				Date:                     date,
				TempMinF:                 temperature,
				TempMaxF:                 temperature,
				ConditionText:            period.ShortForecast,
				PrecipitationProbability: float64(probability),
				WindSpeed:                nwsWindSpeed(period.WindSpeed),
				WindDirection:            period.WindDirection,
			})
			continue
		}

		day := &days[idx]
		day.TempMinF = min(day.TempMinF, temperature)
		day.TempMaxF = max(day.TempMaxF, temperature)
		day.PrecipitationProbability = max(day.PrecipitationProbability, float64(probability))
		if period.IsDaytime && !hasDay[date] {
			hasDay[date] = true
			day.ConditionText = period.ShortForecast
			day.WindSpeed = nwsWindSpeed(period.WindSpeed)
			day.WindDirection = period.WindDirection
		}
	}

	return days, nil
}

// NWSPrecipitationType infers the precipitation kind from forecast text.
// Without a keyword, likely precipitation is snow below 36°F and rain otherwise.
func NWSPrecipitationType(detailed, short string, probability, temperatureF int) *entity.PrecipitationType {
	detailed = strings.ToLower(detailed)
	short = strings.ToLower(short)

	switch {
	case strings.Contains(detailed, "snow") || strings.Contains(short, "snow"):
		return ptr(entity.PrecipitationSnow)
	case strings.Contains(detailed, "rain") || strings.Contains(short, "rain") ||
		strings.Contains(detailed, "shower") || strings.Contains(short, "shower"):
		return ptr(entity.PrecipitationRain)
	case strings.Contains(detailed, "precipitation") || probability > 30:
		if temperatureF < 36 {
			return ptr(entity.PrecipitationSnow)
		}
		return ptr(entity.PrecipitationRain)
	default:
		return nil
	}
}

func nwsFahrenheit(period external.NWSPeriod) int {
	if strings.EqualFold(period.TemperatureUnit, "C") {
		return CelsiusToFahrenheit(*period.Temperature)
	}
	return round(*period.Temperature)
}

func nwsProbability(period external.NWSPeriod) int {
	if period.ProbabilityOfPrecipitation == nil || period.ProbabilityOfPrecipitation.Value == nil {
		return 0
	}
	return clampProbability(*period.ProbabilityOfPrecipitation.Value)
}

// nwsWindSpeed reads "10 mph" or "5 to 10 mph" as its first number
func nwsWindSpeed(value string) float64 {
	speed, ok := numberutils.LeadingInt(value)
	if !ok {
		return 0
	}
	return float64(speed)
}

// formatNWSCoordinate keeps at most four decimals, which is what /points accepts
func formatNWSCoordinate(value float64) string {
	return strconv.FormatFloat(numberutils.RoundTo(value, 4), 'f', -1, 64)
}

func parseTimeOr(value string, fallback time.Time) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fallback
	}
	return parsed
}
