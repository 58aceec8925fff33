package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMatchesKindAndCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := fmt.Errorf("fetch current: %w", NewError(ErrSourceUnavailable, "Weather source nws is unavailable", cause))

	if !errors.Is(err, ErrSourceUnavailable) {
		t.Error("expected kind to match")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to match")
	}
	if errors.Is(err, ErrMalformedResponse) {
		t.Error("unexpected kind match")
	}
	if got := UserMessage(err); got != "Weather source nws is unavailable" {
		t.Errorf("UserMessage = %q", got)
	}
	if !IsUpstream(err) {
		t.Error("expected upstream error")
	}
}

func TestUserMessageFallsBackToErrorText(t *testing.T) {
	if got := UserMessage(errors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}
