package weather

import (
	"fmt"
	"strconv"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/util/numberutils"
)

func (uc *weatherUseCase) Display(snapshot *entity.WeatherSnapshot) *model.WeatherDisplay {
	return FormatDisplay(snapshot)
}

// FormatDisplay renders temperatures in °F, wind as "12 mph NW" and percentages with a % sign
func FormatDisplay(snapshot *entity.WeatherSnapshot) *model.WeatherDisplay {
	if snapshot == nil {
		return nil
	}

	temperature := fmt.Sprintf("%d°F", snapshot.TemperatureF)
	if snapshot.FeelsLikeF != nil {
		temperature = fmt.Sprintf("%d°F (Feels like: %d°F)", snapshot.TemperatureF, *snapshot.FeelsLikeF)
	}

	display := &model.WeatherDisplay{
		Source:        snapshot.Source.DisplayName(),
		Location:      snapshot.Location,
		Temperature:   temperature,
		Conditions:    snapshot.ConditionText,
		Details:       snapshot.DetailedForecast,
		Wind:          FormatWind(snapshot.WindSpeed, snapshot.WindDirection),
		Precipitation: fmt.Sprintf("%d%%", snapshot.PrecipitationProbability),
		Icon:          snapshot.Icon,
		Alerts:        snapshot.Alerts,
	}
	if snapshot.PrecipitationType != nil {
		display.PrecipitationType = string(*snapshot.PrecipitationType)
	}
	if snapshot.Humidity != nil {
		display.Humidity = fmt.Sprintf("%d%%", numberutils.RoundToInt(*snapshot.Humidity))
	}
	if snapshot.Visibility != nil {
		display.Visibility = strconv.FormatFloat(numberutils.RoundTo(*snapshot.Visibility, 1), 'f', -1, 64) + " km"
	}
	if snapshot.UVIndex != nil {
		display.UVIndex = strconv.FormatFloat(*snapshot.UVIndex, 'f', -1, 64)
	}
	return display
}

// FormatWind renders "{speed} mph {direction}" with the speed rounded
func FormatWind(speed float64, direction string) string {
	if direction == "" {
		return fmt.Sprintf("%d mph", numberutils.RoundToInt(speed))
	}
	return fmt.Sprintf("%d mph %s", numberutils.RoundToInt(speed), direction)
}
