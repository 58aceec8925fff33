package location

import "weather-planner/internal/domain/entity"

type UseCase interface {
	// Resolve maps a free-text query to catalog locations: an exact key match gives one result,
	// otherwise every entry whose key or name contains the query, in catalog order
	Resolve(query string) ([]entity.NamedLocation, error)

	// Catalog returns every known location in catalog order
	Catalog() []entity.NamedLocation

	// Keys returns the lower-case catalog keys in catalog order
	Keys() []string

	// Nearest returns the catalog entry closest to coord
	Nearest(coord entity.Coordinate) entity.NamedLocation
}
