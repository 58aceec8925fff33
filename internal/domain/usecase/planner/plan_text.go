package planner

import (
	"strings"

	"weather-planner/internal/domain/model"
	"weather-planner/pkg/msg"
)

// Summary is the one-paragraph weather sentence that opens a plan reply
func Summary(result *model.PlanResult) string {
	forecast := result.Weather.Forecast
	return msg.GetMessage("planner.summary",
		result.Weather.Date, result.Weather.Location, forecast.TempMin, forecast.TempMax,
		forecast.Condition, forecast.PrecipitationProbability)
}

// PlanText renders the plan as plain text, one bulleted block per slot
func PlanText(result *model.PlanResult) string {
	var text strings.Builder

	text.WriteString(Summary(result))
	text.WriteString(" ")
	if result.Plan.IsOutdoorPriority {
		text.WriteString(msg.GetMessage("planner.outdoor"))
	} else {
		text.WriteString(msg.GetMessage("planner.indoor"))
	}
	text.WriteString("\n")

	for _, slot := range []struct{ key, name string }{
		{"morning", "planner.morning"},
		{"afternoon", "planner.afternoon"},
		{"evening", "planner.evening"},
	} {
		block := result.Schedule[slot.key]
		text.WriteString("\n")
		text.WriteString(msg.GetMessage(slot.name, block.Time))
		text.WriteString("\n")
		for _, activity := range block.Activities {
			text.WriteString("- ")
			text.WriteString(activity)
			text.WriteString("\n")
		}
	}
	return text.String()
}
