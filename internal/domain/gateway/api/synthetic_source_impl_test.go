package api

import (
	"context"
	"reflect"
	"testing"
	"time"

	"weather-planner/internal/domain/entity"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestSyntheticForecastIsDeterministic(t *testing.T) {
	// 2026-10-19 is a Monday
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	namer := func(entity.Coordinate) string { return "Truckee, CA" }
	coord := entity.Coordinate{Latitude: 39.328, Longitude: -120.1833}

	first, err := NewSyntheticSource(namer, 7, fixedClock(now)).FetchForecast(context.Background(), coord)
	if err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}
	second, err := NewSyntheticSource(namer, 7, fixedClock(now)).FetchForecast(context.Background(), coord)
	if err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same coordinate and date should give the same forecast")
	}

	if len(first.Daily) != 8 || len(first.Hourly) != 24 {
		t.Fatalf("daily=%d hourly=%d, want 8 and 24", len(first.Daily), len(first.Hourly))
	}
	if first.Daily[0].Date != "2026-10-19" || first.Daily[7].Date != "2026-10-26" {
		t.Errorf("unexpected date range %s..%s", first.Daily[0].Date, first.Daily[7].Date)
	}
	if first.Location != "Truckee, CA" {
		t.Errorf("location = %q", first.Location)
	}

	for _, day := range first.Daily {
		if day.TempMinF < 55 || day.TempMinF > 70 || day.TempMaxF < day.TempMinF+5 || day.TempMaxF > day.TempMinF+15 {
			t.Errorf("%s temperatures out of range: %d..%d", day.Date, day.TempMinF, day.TempMaxF)
		}
		date, _ := time.Parse(entity.DateLayout, day.Date)
		if weekday := date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			if day.PrecipitationProbability < 30 || day.PrecipitationProbability > 70 {
				t.Errorf("weekend %s probability %v out of range", day.Date, day.PrecipitationProbability)
			}
		} else if day.PrecipitationProbability > 30 {
			t.Errorf("weekday %s probability %v out of range", day.Date, day.PrecipitationProbability)
		}
	}
}

func TestSyntheticCurrentFallsBackToCoordinates(t *testing.T) {
	source := NewSyntheticSource(nil, 7, fixedClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)))

	snapshot, err := source.FetchCurrent(context.Background(), entity.Coordinate{Latitude: 1.5, Longitude: 2.25})
	if err != nil {
		t.Fatalf("FetchCurrent: %v", err)
	}
	if snapshot.Location != "Lat: 1.5000, Lon: 2.2500" {
		t.Errorf("location = %q", snapshot.Location)
	}
	if snapshot.Source != entity.SourceSynthetic {
		t.Errorf("source = %q", snapshot.Source)
	}
}
