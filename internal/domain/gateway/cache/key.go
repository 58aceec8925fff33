package cache

import (
	"fmt"
	"time"

	"weather-planner/internal/domain/entity"
)

// Kind separates current conditions from forecasts in the cache
type Kind string

const (
	KindCurrent  Kind = "current"
	KindForecast Kind = "forecast"
)

// Key identifies one cached source result
type Key struct {
	Source     entity.Source
	Kind       Kind
	Coordinate entity.Coordinate
}

func NewKey(source entity.Source, kind Kind, coord entity.Coordinate) Key {
	return Key{Source: source, Kind: kind, Coordinate: coord}
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Source, k.Kind, k.Coordinate)
}

// TTLs holds the freshness window per kind
type TTLs struct {
	Current  time.Duration
	Forecast time.Duration
}

// DefaultTTLs are 15 minutes for current conditions and 30 for forecasts
var DefaultTTLs = TTLs{Current: 15 * time.Minute, Forecast: 30 * time.Minute}

// For returns the TTL of kind
func (t TTLs) For(kind Kind) time.Duration {
	if kind == KindForecast {
		return t.Forecast
	}
	return t.Current
}
