package msg

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGetMessageReplacesPlaceholders(t *testing.T) {
	err := Load(strings.NewReader(`
planner:
  summary: "On {0} in {1}, expect {2}°F"
  error: "I couldn't create a plan: {0}"
warmer:
  started: "every {0}"
`))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		args []interface{}
		want string
	}{
		{"planner.summary", []interface{}{"Monday", "Denver, CO", 72}, "On Monday in Denver, CO, expect 72°F"},
		{"planner.error", []interface{}{errors.New("boom")}, "I couldn't create a plan: boom"},
		{"warmer.started", []interface{}{30 * time.Minute}, "every 30m0s"},
		{"planner.missing", nil, "Message not found: planner.missing"},
	}
	for _, tt := range tests {
		if got := GetMessage(tt.key, tt.args...); got != tt.want {
			t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
