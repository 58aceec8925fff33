package planner

import (
	"strings"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/usecase/location"
)

var categoryKeywords = []struct {
	category entity.Category
	keywords []string
}{
	{entity.CategoryMuseums, []string{"museum", "art", "cultural"}},
	{entity.CategoryParks, []string{"park", "garden", "nature"}},
	{entity.CategoryHikes, []string{"hike", "trail", "hiking"}},
	{entity.CategoryDining, []string{"food", "eat", "restaurant", "dining"}},
	{entity.CategoryShopping, []string{"shop", "shopping", "mall", "store"}},
	{entity.CategoryAttractions, []string{"attraction", "sightseeing", "landmark"}},
	{entity.CategoryEntertainment, []string{"entertainment", "show", "theater"}},
	{entity.CategoryWaterActivities, []string{"water", "beach", "swim", "boat"}},
}

func containsAny(text string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// ExtractIntent reads location, date, preferences and an indoor/outdoor override from a chat message.
// Matching is by case-insensitive substring.
func ExtractIntent(message string, today time.Time, locations location.UseCase) model.Intent {
	text := strings.ToLower(message)
	return model.Intent{
		Location:        ExtractLocation(text, locations),
		Date:            ExtractDate(text, today),
		Preferences:     ExtractPreferences(text),
		OutdoorOverride: ExtractOutdoorOverride(text),
	}
}

// ExtractLocation returns the first catalog location named in text
func ExtractLocation(text string, locations location.UseCase) *entity.NamedLocation {
	text = strings.ToLower(text)
	for _, key := range locations.Keys() {
		if !strings.Contains(text, key) {
			continue
		}
		if results, err := locations.Resolve(key); err == nil && len(results) > 0 {
			return &results[0]
		}
	}
	return nil
}

// ExtractDate maps today, tomorrow and weekend to a date. The weekend is the next Saturday,
// a week ahead when today is Saturday. Without a keyword the date is empty.
func ExtractDate(text string, today time.Time) string {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "today"):
		return today.Format(entity.DateLayout)
	case strings.Contains(text, "tomorrow"):
		return today.AddDate(0, 0, 1).Format(entity.DateLayout)
	case strings.Contains(text, "weekend"):
		days := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days).Format(entity.DateLayout)
	default:
		return ""
	}
}

// ExtractPreferences falls back to DefaultCategories when no keyword matches
func ExtractPreferences(text string) []entity.Category {
	text = strings.ToLower(text)
	var preferences []entity.Category
	for _, entry := range categoryKeywords {
		if containsAny(text, entry.keywords...) {
			preferences = append(preferences, entry.category)
		}
	}
	if len(preferences) == 0 {
		return append([]entity.Category(nil), entity.DefaultCategories...)
	}
	return preferences
}

// ExtractOutdoorOverride is nil when the message states no preference
func ExtractOutdoorOverride(text string) *bool {
	text = strings.ToLower(text)
	var override bool
	switch {
	case containsAny(text, "outdoor", "outside"):
		override = true
	case containsAny(text, "indoor", "inside"):
		override = false
	default:
		return nil
	}
	return &override
}
