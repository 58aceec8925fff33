package entity

import "fmt"

// Coordinate is a resolved latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Valid reports whether the coordinate lies on the globe
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// NamedLocation is a catalog entry
type NamedLocation struct {
	Name string `json:"name"`
	Coordinate
}
