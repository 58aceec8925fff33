package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToFloat64WithError converts the given string to a float64.
func ToFloat64WithError(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// RoundToInt rounds to the nearest integer, ties to even.
func RoundToInt(value float64) int {
	return int(math.RoundToEven(value))
}

// ClampFloat bounds value to [min, max].
func ClampFloat(value, min, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
