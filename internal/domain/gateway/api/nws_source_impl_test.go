package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	pkghttp "weather-planner/pkg/http"
)

const nwsForecastPeriods = `{"properties":{"periods":[
	{"number":1,"name":"Today","startTime":"2026-10-19T06:00:00-07:00","isDaytime":true,"temperature":60,"temperatureUnit":"F",
	 "windSpeed":"5 to 10 mph","windDirection":"SW","shortForecast":"Chance Rain Showers","detailedForecast":"A chance of rain showers.",
	 "icon":"https://api.weather.gov/icons/land/day/rain_showers","probabilityOfPrecipitation":{"unitCode":"wmoUnit:percent","value":35}},
	{"number":2,"name":"Tonight","startTime":"2026-10-19T18:00:00-07:00","isDaytime":false,"temperature":41,"temperatureUnit":"F",
	 "windSpeed":"5 mph","windDirection":"W","shortForecast":"Mostly Cloudy","detailedForecast":"Mostly cloudy.",
	 "probabilityOfPrecipitation":{"unitCode":"wmoUnit:percent","value":55}},
	{"number":3,"name":"Tuesday","startTime":"2026-10-20T06:00:00-07:00","isDaytime":true,"temperature":63,"temperatureUnit":"F",
	 "windSpeed":"10 mph","windDirection":"N","shortForecast":"Sunny","detailedForecast":"Sunny.",
	 "probabilityOfPrecipitation":{"unitCode":"wmoUnit:percent","value":null}}
]}}`

func newNWSServer(t *testing.T, hourlyCount int) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/points/"):
			if r.Header.Get("User-Agent") != "weather-planner-test" {
				t.Errorf("missing User-Agent, got %q", r.Header.Get("User-Agent"))
			}
			if r.URL.Path != "/points/39.328,-120.1833" {
				t.Errorf("unexpected point path %s", r.URL.Path)
			}
			fmt.Fprintf(w, `{"properties":{"forecast":"%[1]s/gridpoints/REV/1,2/forecast","forecastHourly":"%[1]s/gridpoints/REV/1,2/forecast/hourly",
				"gridId":"REV","relativeLocation":{"properties":{"city":"Truckee","state":"CA"}}}}`, server.URL)
		case r.URL.Path == "/gridpoints/REV/1,2/forecast":
			_, _ = w.Write([]byte(nwsForecastPeriods))
		case r.URL.Path == "/gridpoints/REV/1,2/forecast/hourly":
			periods := make([]string, 0, hourlyCount)
			for i := 0; i < hourlyCount; i++ {
				periods = append(periods, fmt.Sprintf(`{"number":%d,"startTime":"2026-10-19T%02d:00:00-07:00","isDaytime":true,
					"temperature":%d,"temperatureUnit":"F","windSpeed":"3 mph","windDirection":"S","shortForecast":"Sunny"}`, i+1, i%24, 50+i%10))
			}
			fmt.Fprintf(w, `{"properties":{"periods":[%s]}}`, strings.Join(periods, ","))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNWSFetchCurrent(t *testing.T) {
	server := newNWSServer(t, 3)
	source := NewNWSSource(server.URL, "weather-planner-test", 24, pkghttp.ClientOptions{})

	snapshot, err := source.FetchCurrent(context.Background(), entity.Coordinate{Latitude: 39.328, Longitude: -120.1833})
	if err != nil {
		t.Fatalf("FetchCurrent: %v", err)
	}

	if snapshot.Location != "Truckee, CA" {
		t.Errorf("location = %q", snapshot.Location)
	}
	if snapshot.TemperatureF != 60 || snapshot.WindSpeed != 5 || snapshot.WindDirection != "SW" {
		t.Errorf("unexpected snapshot %+v", snapshot)
	}
	if snapshot.PrecipitationProbability != 35 {
		t.Errorf("probability = %d", snapshot.PrecipitationProbability)
	}
	if snapshot.PrecipitationType == nil || *snapshot.PrecipitationType != entity.PrecipitationRain {
		t.Errorf("precipitation type = %v", snapshot.PrecipitationType)
	}
	if snapshot.Alerts == nil || len(snapshot.Alerts) != 0 {
		t.Errorf("alerts should be empty, got %v", snapshot.Alerts)
	}
}

func TestNWSFetchForecastGroupsByDate(t *testing.T) {
	server := newNWSServer(t, 30)
	source := NewNWSSource(server.URL, "weather-planner-test", 24, pkghttp.ClientOptions{})

	forecast, err := source.FetchForecast(context.Background(), entity.Coordinate{Latitude: 39.328, Longitude: -120.1833})
	if err != nil {
		t.Fatalf("FetchForecast: %v", err)
	}

	if len(forecast.Daily) != 2 {
		t.Fatalf("daily = %d entries, want 2", len(forecast.Daily))
	}
	today := forecast.Daily[0]
	if today.Date != "2026-10-19" || today.TempMinF != 41 || today.TempMaxF != 60 {
		t.Errorf("unexpected first day %+v", today)
	}
	if today.ConditionText != "Chance Rain Showers" || today.PrecipitationProbability != 55 {
		t.Errorf("first day should keep daytime condition and max probability, got %+v", today)
	}
	if forecast.Daily[1].PrecipitationProbability != 0 {
		t.Errorf("null probability should read as 0, got %v", forecast.Daily[1].PrecipitationProbability)
	}
	if len(forecast.Hourly) != 24 {
		t.Errorf("hourly = %d entries, want 24", len(forecast.Hourly))
	}
}

func TestNWSErrors(t *testing.T) {
	t.Run("upstream status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"title":"Unexpected Problem","status":503}`))
		}))
		defer server.Close()

		source := NewNWSSource(server.URL, "weather-planner-test", 24, pkghttp.ClientOptions{})
		_, err := source.FetchCurrent(context.Background(), entity.Coordinate{Latitude: 40, Longitude: -74})
		if !errors.Is(err, model.ErrSourceUnavailable) {
			t.Fatalf("err = %v, want ErrSourceUnavailable", err)
		}
	})

	t.Run("missing forecast urls", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/geo+json")
			_, _ = w.Write([]byte(`{"properties":{}}`))
		}))
		defer server.Close()

		source := NewNWSSource(server.URL, "weather-planner-test", 24, pkghttp.ClientOptions{})
		_, err := source.FetchForecast(context.Background(), entity.Coordinate{Latitude: 40, Longitude: -74})
		if !errors.Is(err, model.ErrMalformedResponse) {
			t.Fatalf("err = %v, want ErrMalformedResponse", err)
		}
	})
}
