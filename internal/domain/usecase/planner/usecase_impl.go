package planner

import (
	"context"
	"errors"
	"slices"
	"time"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/usecase/location"
	"weather-planner/internal/domain/usecase/weather"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
	"weather-planner/pkg/util/numberutils"
)

const (
	morningWindow   = "9:00 AM - 12:00 PM"
	afternoonWindow = "12:00 PM - 5:00 PM"
	eveningWindow   = "5:00 PM - 10:00 PM"

	fallbackMorning   = "Explore the local area"
	fallbackAfternoon = "Visit local shops"
	fallbackEvening   = "Dinner at a local restaurant"

	slotCap = 2

	displayDateLayout = "Monday, January 02, 2006"
)

// Options configures plan generation
type Options struct {
	Source      string
	HorizonDays int
}

type plannerUseCase struct {
	weather   weather.UseCase
	locations location.UseCase
	picker    Picker
	options   Options
	now       func() time.Time
}

func NewPlannerUseCase(weatherUseCase weather.UseCase, locations location.UseCase, picker Picker, options Options) UseCase {
	if options.Source == "" {
		options.Source = entity.SourceTomorrow.String()
	}
	if options.HorizonDays <= 0 {
		options.HorizonDays = 7
	}
	if picker == nil {
		picker = NewRandomPicker(0)
	}
	return &plannerUseCase{
		weather:   weatherUseCase,
		locations: locations,
		picker:    picker,
		options:   options,
		now:       time.Now,
	}
}

func (uc *plannerUseCase) Generate(ctx context.Context, session *entity.Session, request model.PlanRequest) (*model.PlanResult, error) {
	if request.Location == "" {
		return nil, model.NewError(model.ErrInvalidRequest, msg.GetMessage("request.location-required"), nil)
	}
	results, err := uc.locations.Resolve(request.Location)
	if err != nil {
		return nil, err
	}

	source := request.Source
	if source == "" {
		source = uc.options.Source
	}
	return uc.generate(ctx, session, results[0], request.Date, request.Preferences, request.OutdoorOverride, source)
}

// targetDate parses date and checks it is between today and the horizon, both inclusive.
// An empty date means today.
func (uc *plannerUseCase) targetDate(date string) (time.Time, error) {
	now := uc.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date == "" {
		return today, nil
	}

	target, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return time.Time{}, model.NewError(model.ErrInvalidRequest, msg.GetMessage("request.invalid-date", date), err)
	}

	days := int(target.Sub(today).Hours() / 24)
	switch {
	case days < 0:
		return time.Time{}, model.NewError(model.ErrDateOutOfRange, msg.GetMessage("planner.date-past"), nil)
	case days > uc.options.HorizonDays:
		return time.Time{}, model.NewError(model.ErrDateOutOfRange, msg.GetMessage("planner.date-beyond", uc.options.HorizonDays), nil)
	}
	return target, nil
}

func (uc *plannerUseCase) generate(ctx context.Context, session *entity.Session, place entity.NamedLocation, date string,
	preferences []entity.Category, override *bool, source string) (*model.PlanResult, error) {
	target, err := uc.targetDate(date)
	if err != nil {
		return nil, err
	}
	dateKey := target.Format(entity.DateLayout)

	forecast, _, err := uc.weather.GetForecast(ctx, session, place.Coordinate, source)
	if err != nil {
		return nil, err
	}
	day, ok := forecast.Day(dateKey)
	if !ok {
		return nil, model.NewError(model.ErrNoForecastForDate, msg.GetMessage("planner.no-forecast", dateKey), nil)
	}

	suitable := IsOutdoorSuitable(day.TempMinF, day.TempMaxF, day.PrecipitationProbability, day.ConditionText)
	outdoor := suitable
	if override != nil {
		outdoor = *override
	}
	if len(preferences) == 0 {
		preferences = entity.DefaultCategories
	}

	plan := uc.buildPlan(LocationKey(place.Name), preferences, outdoor)
	plan.Location = place.Name
	plan.Date = dateKey

	result := &model.PlanResult{
		Success: true,
		Plan:    plan,
		Weather: model.WeatherAssessment{
			Date:     target.Format(displayDateLayout),
			Location: place.Name,
			Forecast: model.ForecastSummary{
				TempMin:                  day.TempMinF,
				TempMax:                  day.TempMaxF,
				Condition:                day.ConditionText,
				PrecipitationProbability: numberutils.RoundToInt(day.PrecipitationProbability),
				Wind:                     weather.FormatWind(day.WindSpeed, day.WindDirection),
				IsGoodForOutdoors:        suitable,
			},
		},
		Schedule: map[string]model.TimeSlot{
			"morning":   {Time: morningWindow, Activities: plan.Morning},
			"afternoon": {Time: afternoonWindow, Activities: plan.Afternoon},
			"evening":   {Time: eveningWindow, Activities: plan.Evening},
		},
	}

	message := msg.GetMessage("planner.generated", place.Name, dateKey, outdoor)
	log.Info(message)
	session.Record(uc.now(), message)
	return result, nil
}

// buildPlan fills morning and afternoon from the preferred categories of the chosen catalog,
// then adds one dining and one entertainment entry for the evening
func (uc *plannerUseCase) buildPlan(key string, preferences []entity.Category, outdoor bool) entity.DayPlan {
	chosen := indoorActivities
	if outdoor {
		chosen = outdoorActivities
	}

	var morning, afternoon, evening []string
	for _, preference := range preferences {
		options, ok := chosen.activities(preference, key)
		if !ok {
			continue
		}
		if len(morning) < slotCap {
			morning = append(morning, uc.picker.Pick(options))
		}
		if len(afternoon) < slotCap {
			if activity := uc.picker.Pick(options); !slices.Contains(morning, activity) {
				afternoon = append(afternoon, activity)
			}
		}
	}

	if options, ok := indoorActivities.activities(entity.CategoryDining, key); ok {
		evening = append(evening, uc.picker.Pick(options))
	}
	if options, ok := indoorActivities.activities(entity.CategoryEntertainment, key); ok {
		evening = append(evening, uc.picker.Pick(options))
	}

	if len(morning) == 0 {
		if options, ok := indoorActivities.activities(entity.CategoryMuseums, key); ok {
			morning = append(morning, uc.picker.Pick(options))
		} else {
			morning = append(morning, fallbackMorning)
		}
	}
	if len(afternoon) == 0 {
		if options, ok := indoorActivities.activities(entity.CategoryShopping, key); ok {
			afternoon = append(afternoon, uc.picker.Pick(options))
		} else {
			afternoon = append(afternoon, fallbackAfternoon)
		}
	}
	if len(evening) == 0 {
		evening = append(evening, fallbackEvening)
	}

	return entity.DayPlan{IsOutdoorPriority: outdoor, Morning: morning, Afternoon: afternoon, Evening: evening}
}

func (uc *plannerUseCase) Converse(ctx context.Context, session *entity.Session, message string) *model.ChatReply {
	sessionID := ""
	if session != nil {
		sessionID = session.ID
	}
	session.AddTurn(uc.now(), entity.RoleUser, message)

	intent := ExtractIntent(message, uc.now(), uc.locations)
	reply := &model.ChatReply{SessionID: sessionID, Intent: &intent}

	if intent.Location == nil {
		reply.Type = model.ReplyQuestion
		reply.Message = msg.GetMessage("planner.ask-location")
		session.AddTurn(uc.now(), entity.RoleAssistant, reply.Message)
		return reply
	}

	result, err := uc.generate(ctx, session, *intent.Location, intent.Date, intent.Preferences, intent.OutdoorOverride, uc.options.Source)
	if err != nil {
		reply.Type = model.ReplyError
		reply.Message = replyError(err)
		session.AddTurn(uc.now(), entity.RoleAssistant, reply.Message)
		return reply
	}

	reply.Type = model.ReplyPlan
	reply.Message = msg.GetMessage("planner.created")
	reply.Summary = Summary(result)
	reply.Plan = result
	reply.PlanText = PlanText(result)
	session.AddTurn(uc.now(), entity.RoleAssistant, reply.PlanText)
	return reply
}

// replyError keeps the specific message of domain failures and wraps anything else
func replyError(err error) string {
	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	log.Errorw("planner failed", "error", err)
	return msg.GetMessage("planner.error", err)
}
