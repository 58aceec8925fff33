package location

import "weather-planner/internal/domain/entity"

type catalogEntry struct {
	key      string
	location entity.NamedLocation
}

func named(name string, lat, lon float64) entity.NamedLocation {
	return entity.NamedLocation{Name: name, Coordinate: entity.Coordinate{Latitude: lat, Longitude: lon}}
}

var catalog = []catalogEntry{
	{"new york", named("New York, NY", 40.7128, -74.0060)},
	{"los angeles", named("Los Angeles, CA", 34.0522, -118.2437)},
	{"chicago", named("Chicago, IL", 41.8781, -87.6298)},
	{"houston", named("Houston, TX", 29.7604, -95.3698)},
	{"miami", named("Miami, FL", 25.7617, -80.1918)},
	{"seattle", named("Seattle, WA", 47.6062, -122.3321)},
	{"san francisco", named("San Francisco, CA", 37.7749, -122.4194)},
	{"denver", named("Denver, CO", 39.7392, -104.9903)},
	{"truckee", named("Truckee, CA", 39.3280, -120.1833)},
	{"donner lake", named("Donner Lake, CA", 39.1395453, -120.1664349)},
}
