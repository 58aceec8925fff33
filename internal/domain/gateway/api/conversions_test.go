package api

import (
	"testing"

	"weather-planner/internal/domain/entity"
)

func TestWeatherText(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{1000, "Clear, Sunny"},
		{1101, "Partly Cloudy"},
		{4001, "Rain"},
		{8000, "Thunderstorm"},
		{0, "Unknown (0)"},
		{9999, "Unknown (9999)"},
	}

	for _, tt := range tests {
		if got := WeatherText(tt.code); got != tt.want {
			t.Errorf("WeatherText(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestWeatherCodesReturnsCopy(t *testing.T) {
	codes := WeatherCodes()
	codes[1000] = "changed"
	if WeatherText(1000) != "Clear, Sunny" {
		t.Fatal("WeatherCodes leaked the internal table")
	}
	if len(WeatherCodes()) != len(weatherCodes) {
		t.Fatal("copy should contain every code")
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{11.25, "N"},
		{22.5, "NNE"},
		{33.75, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{337.5, "NNW"},
		{348.75, "N"},
		{360, "N"},
		{-45, "NW"},
	}

	for _, tt := range tests {
		if got := CompassPoint(tt.degrees); got != tt.want {
			t.Errorf("CompassPoint(%v) = %q, want %q", tt.degrees, got, tt.want)
		}
	}
}

func TestUnitConversions(t *testing.T) {
	if got := CelsiusToFahrenheit(20); got != 68 {
		t.Errorf("CelsiusToFahrenheit(20) = %d", got)
	}
	if got := CelsiusToFahrenheit(22.5); got != 72 {
		t.Errorf("CelsiusToFahrenheit(22.5) = %d, want 72", got)
	}
	if got := MetersPerSecondToMph(5); got != 11.2 {
		t.Errorf("MetersPerSecondToMph(5) = %v", got)
	}
}

func TestTomorrowPrecipitationType(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		probability float64
		want        *entity.PrecipitationType
	}{
		{"none", 0, 90, nil},
		{"rain", 1, 50, ptr(entity.PrecipitationRain)},
		{"snow", 2, 11, ptr(entity.PrecipitationSnow)},
		{"freezing rain", 3, 40, ptr(entity.PrecipitationFreezingRain)},
		{"ice pellets", 4, 40, ptr(entity.PrecipitationIcePellets)},
		{"low probability", 1, 10, nil},
		{"out of range", 9, 60, ptr(entity.PrecipitationUnknown)},
		{"out of range low probability", 9, 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TomorrowPrecipitationType(tt.index, tt.probability)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("got %q, want none", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Fatalf("got %v, want %q", got, *tt.want)
			}
		})
	}
}

func TestNWSPrecipitationType(t *testing.T) {
	tests := []struct {
		name        string
		detailed    string
		short       string
		probability int
		tempF       int
		want        *entity.PrecipitationType
	}{
		{"snow keyword", "Snow likely after 4pm", "Snow Likely", 80, 30, ptr(entity.PrecipitationSnow)},
		{"shower keyword", "", "Chance Showers", 20, 60, ptr(entity.PrecipitationRain)},
		{"probability cold", "Cloudy", "Cloudy", 60, 30, ptr(entity.PrecipitationSnow)},
		{"probability warm", "Cloudy", "Cloudy", 60, 50, ptr(entity.PrecipitationRain)},
		{"precipitation text", "Precipitation possible", "Cloudy", 10, 70, ptr(entity.PrecipitationRain)},
		{"dry", "Sunny", "Sunny", 5, 70, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NWSPrecipitationType(tt.detailed, tt.short, tt.probability, tt.tempF)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("got %q, want none", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Fatalf("got %v, want %q", got, *tt.want)
			}
		})
	}
}
