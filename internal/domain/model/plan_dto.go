package model

import "weather-planner/internal/domain/entity"

// PlanRequest is the input to plan generation. OutdoorOverride, when set, wins over the forecast.
type PlanRequest struct {
	Location        string            `json:"location"`
	Date            string            `json:"date"`
	Preferences     []entity.Category `json:"preferences"`
	OutdoorOverride *bool             `json:"outdoor_override"`
	Source          string            `json:"source,omitempty"`
}

// ForecastSummary is the weather assessment for the planned day
type ForecastSummary struct {
	TempMin                  int    `json:"temp_min"`
	TempMax                  int    `json:"temp_max"`
	Condition                string `json:"condition"`
	PrecipitationProbability int    `json:"precipitation_probability"`
	Wind                     string `json:"wind"`
	IsGoodForOutdoors        bool   `json:"is_good_for_outdoors"`
}

type WeatherAssessment struct {
	Date     string          `json:"date"`
	Location string          `json:"location"`
	Forecast ForecastSummary `json:"forecast"`
}

// TimeSlot is one block of the day with its window
type TimeSlot struct {
	Time       string   `json:"time"`
	Activities []string `json:"activities"`
}

type PlanResult struct {
	Success  bool                `json:"success"`
	Plan     entity.DayPlan      `json:"plan"`
	Weather  WeatherAssessment   `json:"weather"`
	Schedule map[string]TimeSlot `json:"schedule"`
}

// Intent is what the conversational entry point extracted from a message
type Intent struct {
	Location        *entity.NamedLocation `json:"location,omitempty"`
	Date            string                `json:"date"`
	Preferences     []entity.Category     `json:"preferences"`
	OutdoorOverride *bool                 `json:"outdoor_override"`
}

// ReplyType distinguishes conversational replies
type ReplyType string

const (
	ReplyQuestion ReplyType = "question"
	ReplyError    ReplyType = "error"
	ReplyPlan     ReplyType = "plan"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatReply struct {
	Type      ReplyType   `json:"type"`
	Message   string      `json:"message"`
	SessionID string      `json:"session_id"`
	Intent    *Intent     `json:"intent,omitempty"`
	Summary   string      `json:"weather_summary,omitempty"`
	Plan      *PlanResult `json:"plan,omitempty"`
	PlanText  string      `json:"plan_text,omitempty"`
}

// SessionView is the public projection of a session
type SessionView struct {
	ID        string              `json:"id"`
	CreatedAt string              `json:"created_at"`
	LastSeen  string              `json:"last_seen"`
	History   []entity.Turn       `json:"history"`
	Trail     []entity.TrailEntry `json:"trail"`
}
