package numberutils

import (
	"strconv"
	"strings"
)

// ToIntWithDefault converts the given string to an integer.
// If the string cannot be converted, it returns the provided default value.
func ToIntWithDefault(s string, defaultVal int) int {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return i
	}
	return defaultVal
}

// LeadingInt returns the first run of digits found in s, e.g. 5 for "5 to 10 mph".
// ok is false when s holds no digits.
func LeadingInt(s string) (value int, ok bool) {
	start := strings.IndexAny(s, "0123456789")
	if start < 0 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	value, err := strconv.Atoi(s[start:end])
	return value, err == nil
}

// ClampInt bounds num to [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
