package entity

import "time"

// DateLayout is the calendar-date layout used for DayForecast.Date
const DateLayout = "2006-01-02"

// ForecastSet holds daily and hourly forecasts, both ordered ascending
type ForecastSet struct {
	Source     Source         `json:"source"`
	Location   string         `json:"location"`
	Coordinate Coordinate     `json:"coordinate"`
	Daily      []DayForecast  `json:"daily"`
	Hourly     []HourForecast `json:"hourly"`
}

// Day returns the daily entry for date, formatted as DateLayout
func (f ForecastSet) Day(date string) (DayForecast, bool) {
	for _, day := range f.Daily {
		if day.Date == date {
			return day, true
		}
	}
	return DayForecast{}, false
}

// DayForecast keeps the upstream precipitation probability unrounded
type DayForecast struct {
	Date                     string  `json:"date"`
	TempMinF                 int     `json:"temp_min_f"`
	TempMaxF                 int     `json:"temp_max_f"`
	ConditionText            string  `json:"condition_text"`
	PrecipitationProbability float64 `json:"precipitation_probability"`
	WindSpeed                float64 `json:"wind_speed"`
	WindDirection            string  `json:"wind_direction"`

	TempMinC    *float64 `json:"temp_min_c,omitempty"`
	TempMaxC    *float64 `json:"temp_max_c,omitempty"`
	WeatherCode *int     `json:"weather_code,omitempty"`
}

type HourForecast struct {
	Time                     time.Time `json:"time"`
	TemperatureF             int       `json:"temperature_f"`
	ConditionText            string    `json:"condition_text"`
	PrecipitationProbability int       `json:"precipitation_probability"`
	WindSpeed                float64   `json:"wind_speed"`
	WindDirection            string    `json:"wind_direction"`

	TemperatureC *float64 `json:"temperature_c,omitempty"`
	WeatherCode  *int     `json:"weather_code,omitempty"`
}
