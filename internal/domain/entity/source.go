package entity

import (
	"fmt"
	"strings"
)

// Source identifies an upstream weather provider
type Source string

const (
	SourceNWS       Source = "nws"
	SourceTomorrow  Source = "tomorrow"
	SourceSynthetic Source = "synthetic"
)

// Sources lists every supported source in display order
var Sources = []Source{SourceTomorrow, SourceNWS, SourceSynthetic}

// ParseSource accepts a case-insensitive source key.
func ParseSource(value string) (Source, error) {
	source := Source(strings.ToLower(strings.TrimSpace(value)))
	switch source {
	case SourceNWS, SourceTomorrow, SourceSynthetic:
		return source, nil
	default:
		return "", fmt.Errorf("unsupported source %q", value)
	}
}

func (s Source) String() string {
	return string(s)
}

// DisplayName is the provider label shown to users
func (s Source) DisplayName() string {
	switch s {
	case SourceNWS:
		return "National Weather Service"
	case SourceTomorrow:
		return "Tomorrow.io"
	case SourceSynthetic:
		return "Synthetic"
	default:
		return string(s)
	}
}
