package planner

import "strings"

var badWeatherWords = []string{"rain", "snow", "storm", "thunder", "fog"}

// IsOutdoorSuitable reports whether a day is fit for outdoor activities.
// Any bad-weather word in the condition, more than 40% precipitation, a high under 40°F
// or a low over 95°F makes it unsuitable. The probability is compared unrounded.
func IsOutdoorSuitable(tempMinF, tempMaxF int, precipitationProbability float64, condition string) bool {
	condition = strings.ToLower(condition)
	for _, word := range badWeatherWords {
		if strings.Contains(condition, word) {
			return false
		}
	}
	return precipitationProbability <= 40 && tempMaxF >= 40 && tempMinF <= 95
}
