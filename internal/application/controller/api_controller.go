package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weather-planner/internal/application/middleware"
	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/usecase/health"
	"weather-planner/internal/domain/usecase/location"
	"weather-planner/internal/domain/usecase/weather"
	"weather-planner/pkg/msg"
)

// defaultSource is used when a request does not name one
const defaultSource = entity.SourceNWS

// ApiController serves the single query-parameter endpoint used by other applications
type ApiController struct {
	api       *echo.Group
	weather   weather.UseCase
	locations location.UseCase
	health    health.UseCase
}

func NewApiController(api *echo.Group, weatherUseCase weather.UseCase, locations location.UseCase, healthUseCase health.UseCase) *ApiController {
	return &ApiController{api: api, weather: weatherUseCase, locations: locations, health: healthUseCase}
}

// InitApiRoutes initializes the request_type endpoint
func (controller *ApiController) InitApiRoutes() {
	controller.api.GET("/api", controller.Dispatch)
}

// Dispatch godoc
// @Summary Weather API
// @Description Single entry point selected by request_type: weather, forecast, geocoding or healthcheck
// @Tags api
// @Produce json
// @Param request_type query string true "weather, forecast, geocoding or healthcheck"
// @Param lat query number false "Latitude (weather, forecast)"
// @Param lon query number false "Longitude (weather, forecast)"
// @Param source query string false "nws, tomorrow or synthetic" default(nws)
// @Param query query string false "Location search text (geocoding)"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} model.WeatherResult "Current conditions (request_type=weather)"
// @Success 200 {object} model.ForecastResult "Forecast (request_type=forecast)"
// @Success 200 {object} model.GeocodingResult "Matching locations (request_type=geocoding)"
// @Success 200 {object} model.HealthcheckResult "Liveness (request_type=healthcheck)"
// @Failure 400 {object} model.FailureResult "Invalid parameters or unknown source"
// @Failure 404 {object} model.GeocodingResult "No matching location"
// @Failure 502 {object} model.FailureResult "Upstream source failure"
// @Router /api [get]
func (controller *ApiController) Dispatch(c echo.Context) error {
	requestType := c.QueryParam("request_type")

	switch requestType {
	case "weather":
		return controller.currentWeather(c)
	case "forecast":
		return controller.forecast(c)
	case "geocoding":
		return controller.geocoding(c)
	case "healthcheck":
		return c.JSON(http.StatusOK, controller.health.Healthcheck())
	default:
		return failure(c, invalidRequest("request.invalid-request-type", requestType))
	}
}

func sourceParam(c echo.Context) string {
	if source := c.QueryParam("source"); source != "" {
		return source
	}
	return defaultSource.String()
}

func (controller *ApiController) currentWeather(c echo.Context) error {
	coord, err := coordinateParams(c)
	if err != nil {
		return failure(c, err)
	}

	snapshot, cached, err := controller.weather.GetCurrent(c.Request().Context(), middleware.SessionFrom(c), coord, sourceParam(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, model.WeatherResult{
		Success: true,
		Data:    snapshot,
		Display: controller.weather.Display(snapshot),
		Cached:  cached,
	})
}

func (controller *ApiController) forecast(c echo.Context) error {
	coord, err := coordinateParams(c)
	if err != nil {
		return failure(c, err)
	}

	forecast, cached, err := controller.weather.GetForecast(c.Request().Context(), middleware.SessionFrom(c), coord, sourceParam(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, model.ForecastResult{Success: true, Data: forecast, Cached: cached})
}

func (controller *ApiController) geocoding(c echo.Context) error {
	return geocode(c, controller.locations, c.QueryParam("query"))
}

// geocode answers with the GeocodingResult shape on success and failure alike
func geocode(c echo.Context, locations location.UseCase, query string) error {
	results, err := locations.Resolve(query)
	if err != nil {
		return c.JSON(statusFor(err), model.GeocodingResult{
			Success: false,
			Message: model.UserMessage(err),
			Results: []entity.NamedLocation{},
		})
	}
	middleware.SessionFrom(c).Record(time.Now(), msg.GetMessage("location.found", len(results)))
	return c.JSON(http.StatusOK, model.GeocodingResult{Success: true, Results: results})
}
