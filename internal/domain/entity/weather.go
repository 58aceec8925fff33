package entity

import "time"

// PrecipitationType is the normalized kind of precipitation
type PrecipitationType string

const (
	PrecipitationRain         PrecipitationType = "rain"
	PrecipitationSnow         PrecipitationType = "snow"
	PrecipitationFreezingRain PrecipitationType = "freezing_rain"
	PrecipitationIcePellets   PrecipitationType = "ice_pellets"
	PrecipitationUnknown      PrecipitationType = "unknown"
)

// WeatherSnapshot is the normalized current-conditions record.
// Pointer fields are optional extensions that only some sources provide.
type WeatherSnapshot struct {
	Source                   Source             `json:"source"`
	Location                 string             `json:"location"`
	Coordinate               Coordinate         `json:"coordinate"`
	ObservedAt               time.Time          `json:"observed_at"`
	TemperatureF             int                `json:"temperature_f"`
	ConditionText            string             `json:"condition_text"`
	WindSpeed                float64            `json:"wind_speed"`
	WindDirection            string             `json:"wind_direction"`
	PrecipitationProbability int                `json:"precipitation_probability"`
	PrecipitationType        *PrecipitationType `json:"precipitation_type,omitempty"`

	FeelsLikeF       *int     `json:"feels_like_f,omitempty"`
	Humidity         *float64 `json:"humidity,omitempty"`
	UVIndex          *float64 `json:"uv_index,omitempty"`
	Visibility       *float64 `json:"visibility,omitempty"`
	CloudCover       *float64 `json:"cloud_cover,omitempty"`
	WindGust         *float64 `json:"wind_gust,omitempty"`
	DetailedForecast string   `json:"detailed_forecast,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	Alerts           []string `json:"alerts,omitempty"`

	// Values as reported by the source, kept for round-tripping.
	TemperatureC          *float64 `json:"temperature_c,omitempty"`
	FeelsLikeC            *float64 `json:"feels_like_c,omitempty"`
	WeatherCode           *int     `json:"weather_code,omitempty"`
	PrecipitationTypeCode *int     `json:"precipitation_type_code,omitempty"`
}
