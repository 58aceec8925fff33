package location

import (
	"errors"
	"testing"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
)

func TestResolveExactMatch(t *testing.T) {
	uc := NewLocationUseCase()

	results, err := uc.Resolve("Donner Lake")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := entity.NamedLocation{Name: "Donner Lake, CA", Coordinate: entity.Coordinate{Latitude: 39.1395453, Longitude: -120.1664349}}
	if len(results) != 1 || results[0] != want {
		t.Fatalf("results = %+v", results)
	}
}

func TestResolvePartialMatches(t *testing.T) {
	uc := NewLocationUseCase()

	tests := []struct {
		query string
		want  []string
	}{
		{"san", []string{"San Francisco, CA"}},
		{", ca", []string{"Los Angeles, CA", "San Francisco, CA", "Truckee, CA", "Donner Lake, CA"}},
		{"on", []string{"Houston, TX", "Donner Lake, CA"}},
		{"new", []string{"New York, NY"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			results, err := uc.Resolve(tt.query)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.query, err)
			}
			if len(results) != len(tt.want) {
				t.Fatalf("Resolve(%q) = %+v", tt.query, results)
			}
			for i, name := range tt.want {
				if results[i].Name != name {
					t.Errorf("result %d = %q, want %q", i, results[i].Name, name)
				}
			}
		})
	}
}

func TestResolveFailures(t *testing.T) {
	uc := NewLocationUseCase()

	if _, err := uc.Resolve("atlantis"); !errors.Is(err, model.ErrLocationNotFound) {
		t.Errorf("unknown place err = %v", err)
	}
	if _, err := uc.Resolve("   "); !errors.Is(err, model.ErrInvalidRequest) {
		t.Errorf("blank query err = %v", err)
	}
}

func TestCatalogAndNearest(t *testing.T) {
	uc := NewLocationUseCase()

	if len(uc.Catalog()) != 10 || len(uc.Keys()) != 10 {
		t.Fatalf("catalog size = %d", len(uc.Catalog()))
	}
	if uc.Keys()[0] != "new york" || uc.Keys()[9] != "donner lake" {
		t.Errorf("keys out of order: %v", uc.Keys())
	}
	if got := uc.Nearest(entity.Coordinate{Latitude: 39.33, Longitude: -120.18}); got.Name != "Truckee, CA" {
		t.Errorf("Nearest = %q", got.Name)
	}
	if got := uc.Nearest(entity.Coordinate{Latitude: 40.0, Longitude: -105.0}); got.Name != "Denver, CO" {
		t.Errorf("Nearest = %q", got.Name)
	}
}
