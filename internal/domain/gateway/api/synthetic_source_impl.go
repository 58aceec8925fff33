package api

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"time"

	"weather-planner/internal/domain/entity"
)

// LocationNamer names a coordinate, e.g. after the nearest known city
type LocationNamer func(coord entity.Coordinate) string

// syntheticSourceImpl generates plausible weather without any network call.
// Output depends only on the coordinate and the calendar date, so repeated calls agree.
type syntheticSourceImpl struct {
	namer LocationNamer
	days  int
	now   func() time.Time
}

// NewSyntheticSource returns a source covering today plus days more days
func NewSyntheticSource(namer LocationNamer, days int, now func() time.Time) WeatherSource {
	if now == nil {
		now = time.Now
	}
	if days <= 0 {
		days = 7
	}
	return &syntheticSourceImpl{namer: namer, days: days, now: now}
}

func (s *syntheticSourceImpl) Source() entity.Source {
	return entity.SourceSynthetic
}

func (s *syntheticSourceImpl) name(coord entity.Coordinate) string {
	if s.namer != nil {
		if name := s.namer(coord); name != "" {
			return name
		}
	}
	return coordinateLabel(coord)
}

func (s *syntheticSourceImpl) rng(coord entity.Coordinate, salt string) *rand.Rand {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(coord.String()))
	_, _ = hash.Write([]byte(salt))
	return rand.New(rand.NewPCG(hash.Sum64(), uint64(len(salt))))
}

func between(r *rand.Rand, low, high int) int {
	return low + r.IntN(high-low+1)
}

func pick(r *rand.Rand, codes ...int) int {
	return codes[r.IntN(len(codes))]
}

func (s *syntheticSourceImpl) FetchCurrent(ctx context.Context, coord entity.Coordinate) (*entity.WeatherSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()
	r := s.rng(coord, now.Format("2006-01-02T15"))

	temperatureF := between(r, 55, 80)
	code := pick(r, 1000, 1100, 1101, 1001)
	probability := between(r, 0, 30)
	humidity := float64(between(r, 30, 80))

	return &entity.WeatherSnapshot{
		Source:                   entity.SourceSynthetic,
		Location:                 s.name(coord),
		Coordinate:               coord,
		ObservedAt:               now.Truncate(time.Hour),
		TemperatureF:             temperatureF,
		ConditionText:            WeatherText(code),
		WindSpeed:                float64(between(r, 5, 15)),
		WindDirection:            CompassPoint(float64(r.IntN(360))),
		PrecipitationProbability: probability,
		Humidity:                 &humidity,
		WeatherCode:              ptr(code),
		TemperatureC:             ptr(fahrenheitToCelsius(float64(temperatureF))),
	}, nil
}

// FetchForecast generates daily entries from today on; weekends lean cloudy or wet
func (s *syntheticSourceImpl) FetchForecast(ctx context.Context, coord entity.Coordinate) (*entity.ForecastSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	daily := make([]entity.DayForecast, 0, s.days+1)
	for i := 0; i <= s.days; i++ {
		date := today.AddDate(0, 0, i)
		r := s.rng(coord, date.Format(entity.DateLayout))

		tempMin := between(r, 55, 70)
		tempMax := tempMin + between(r, 5, 15)
		var code, probability int
		if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			code = pick(r, 1001, 1102, 4000, 4001)
			probability = between(r, 30, 70)
		} else {
			code = pick(r, 1000, 1100, 1101)
			probability = between(r, 0, 30)
		}

		daily = append(daily, entity.DayForecast{
			Date:                     date.Format(entity.DateLayout),
			TempMinF:                 tempMin,
			TempMaxF:                 tempMax,
			ConditionText:            WeatherText(code),
			PrecipitationProbability: float64(probability),
			WindSpeed:                float64(between(r, 5, 15)),
			WindDirection:            CompassPoint(float64(r.IntN(360))),
			TempMinC:                 ptr(fahrenheitToCelsius(float64(tempMin))),
			TempMaxC:                 ptr(fahrenheitToCelsius(float64(tempMax))),
			WeatherCode:              ptr(code),
		})
	}

	start := now.Truncate(time.Hour)
	hourly := make([]entity.HourForecast, 0, 24)
	for i := 0; i < 24; i++ {
		at := start.Add(time.Duration(i) * time.Hour)
		r := s.rng(coord, at.Format("2006-01-02T15"))

		var temperature, probability int
		switch hour := at.Hour(); {
		case hour >= 6 && hour <= 14:
			temperature = between(r, 60, 80)
		case hour >= 15 && hour <= 19:
			temperature = between(r, 70, 85)
		default:
			temperature = between(r, 55, 70)
		}
		if hour := at.Hour(); hour >= 13 && hour <= 16 {
			probability = between(r, 10, 50)
		} else {
			probability = between(r, 0, 30)
		}
		code := pick(r, 1000, 1100, 1101, 1001)

		hourly = append(hourly, entity.HourForecast{
			Time:                     at,
			TemperatureF:             temperature,
			ConditionText:            WeatherText(code),
			PrecipitationProbability: probability,
			WindSpeed:                float64(between(r, 5, 15)),
			WindDirection:            CompassPoint(float64(r.IntN(360))),
			TemperatureC:             ptr(fahrenheitToCelsius(float64(temperature))),
			WeatherCode:              ptr(code),
		})
	}

	return &entity.ForecastSet{
		Source:     entity.SourceSynthetic,
		Location:   s.name(coord),
		Coordinate: coord,
		Daily:      daily,
		Hourly:     hourly,
	}, nil
}
