package model

import "weather-planner/internal/domain/entity"

// FailureResult is the uniform failure body
type FailureResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Failure(message string) FailureResult {
	return FailureResult{Success: false, Message: message}
}

// GeocodingResult is returned by location lookups. Results is never null.
type GeocodingResult struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Results []entity.NamedLocation `json:"results"`
}

type WeatherResult struct {
	Success bool                    `json:"success"`
	Data    *entity.WeatherSnapshot `json:"data"`
	Display *WeatherDisplay         `json:"display,omitempty"`
	Cached  bool                    `json:"cached"`
}

type ForecastResult struct {
	Success bool                `json:"success"`
	Data    *entity.ForecastSet `json:"data"`
	Cached  bool                `json:"cached"`
}
