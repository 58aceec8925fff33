package api

import (
	"fmt"

	"weather-planner/internal/domain/entity"
	"weather-planner/pkg/util/numberutils"
)

// weatherCodes maps Tomorrow.io weather codes to labels
var weatherCodes = map[int]string{
	1000: "Clear, Sunny",
	1001: "Cloudy",
	1100: "Mostly Clear",
	1101: "Partly Cloudy",
	1102: "Mostly Cloudy",
	2000: "Fog",
	2100: "Light Fog",
	3000: "Light Wind",
	3001: "Wind",
	3002: "Strong Wind",
	4000: "Drizzle",
	4001: "Rain",
	4200: "Light Rain",
	4201: "Heavy Rain",
	5000: "Snow",
	5001: "Flurries",
	5100: "Light Snow",
	5101: "Heavy Snow",
	6000: "Freezing Drizzle",
	6001: "Freezing Rain",
	6200: "Light Freezing Rain",
	6201: "Heavy Freezing Rain",
	7000: "Ice Pellets",
	7101: "Heavy Ice Pellets",
	7102: "Light Ice Pellets",
	8000: "Thunderstorm",
}

// WeatherText returns the label for a weather code, or "Unknown (code)".
func WeatherText(code int) string {
	if text, ok := weatherCodes[code]; ok {
		return text
	}
	return fmt.Sprintf("Unknown (%d)", code)
}

// WeatherCodes returns a copy of the code table
func WeatherCodes() map[int]string {
	codes := make(map[int]string, len(weatherCodes))
	for code, text := range weatherCodes {
		codes[code] = text
	}
	return codes
}

var compassPoints = [16]string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// CompassPoint converts degrees to a 16-point compass direction
func CompassPoint(degrees float64) string {
	index := numberutils.RoundToInt(degrees/22.5) % 16
	if index < 0 {
		index += 16
	}
	return compassPoints[index]
}

// CelsiusToFahrenheit converts and rounds for display
func CelsiusToFahrenheit(celsius float64) int {
	return numberutils.RoundToInt(celsius*9/5 + 32)
}

func fahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

const metersPerSecondToMph = 2.2369362921

// MetersPerSecondToMph converts wind speed, rounded to one decimal
func MetersPerSecondToMph(speed float64) float64 {
	return numberutils.RoundTo(speed*metersPerSecondToMph, 1)
}

var tomorrowPrecipitationTypes = []entity.PrecipitationType{
	"",
	entity.PrecipitationRain,
	entity.PrecipitationSnow,
	entity.PrecipitationFreezingRain,
	entity.PrecipitationIcePellets,
}

// TomorrowPrecipitationType maps Tomorrow.io's precipitation-type index.
// Index 0 means none; any type is reported only when probability exceeds 10.
func TomorrowPrecipitationType(index int, probability float64) *entity.PrecipitationType {
	if index == 0 || probability <= 10 {
		return nil
	}
	precipitation := entity.PrecipitationUnknown
	if index > 0 && index < len(tomorrowPrecipitationTypes) {
		precipitation = tomorrowPrecipitationTypes[index]
	}
	return &precipitation
}

func round(value float64) int {
	return numberutils.RoundToInt(value)
}

func clampProbability(value float64) int {
	return numberutils.ClampInt(round(value), 0, 100)
}

func clampPercent(value float64) float64 {
	return numberutils.ClampFloat(value, 0, 100)
}

func ptr[T any](value T) *T {
	return &value
}

func valueOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

// coordinateLabel is used when a source has no place name
func coordinateLabel(coord entity.Coordinate) string {
	return fmt.Sprintf("Lat: %.4f, Lon: %.4f", coord.Latitude, coord.Longitude)
}
