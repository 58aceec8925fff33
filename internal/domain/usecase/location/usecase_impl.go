package location

import (
	"strings"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/msg"
)

type locationUseCase struct {
	entries []catalogEntry
}

func NewLocationUseCase() UseCase {
	return &locationUseCase{entries: catalog}
}

func (uc *locationUseCase) Resolve(query string) ([]entity.NamedLocation, error) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, model.NewError(model.ErrInvalidRequest, msg.GetMessage("request.query-required"), nil)
	}

	for _, entry := range uc.entries {
		if entry.key == normalized {
			return []entity.NamedLocation{entry.location}, nil
		}
	}

	var matches []entity.NamedLocation
	for _, entry := range uc.entries {
		if strings.Contains(entry.key, normalized) || strings.Contains(strings.ToLower(entry.location.Name), normalized) {
			matches = append(matches, entry.location)
		}
	}
	if len(matches) == 0 {
		return nil, model.NewError(model.ErrLocationNotFound, msg.GetMessage("location.not-found", query), nil)
	}
	return matches, nil
}

func (uc *locationUseCase) Catalog() []entity.NamedLocation {
	locations := make([]entity.NamedLocation, 0, len(uc.entries))
	for _, entry := range uc.entries {
		locations = append(locations, entry.location)
	}
	return locations
}

func (uc *locationUseCase) Keys() []string {
	keys := make([]string, 0, len(uc.entries))
	for _, entry := range uc.entries {
		keys = append(keys, entry.key)
	}
	return keys
}

// Nearest compares squared planar distance in degrees, which is enough to tell the catalog cities apart
func (uc *locationUseCase) Nearest(coord entity.Coordinate) entity.NamedLocation {
	nearest := uc.entries[0].location
	best := -1.0
	for _, entry := range uc.entries {
		dLat := entry.location.Latitude - coord.Latitude
		dLon := entry.location.Longitude - coord.Longitude
		distance := dLat*dLat + dLon*dLon
		if best < 0 || distance < best {
			best = distance
			nearest = entry.location
		}
	}
	return nearest
}
