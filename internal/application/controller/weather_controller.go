package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-planner/internal/application/middleware"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/usecase/weather"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/current", controller.GetCurrent)
	controller.api.GET("/weather/forecast", controller.GetForecast)
	controller.api.GET("/weather/sources", controller.GetSources)
}

// GetCurrent godoc
// @Summary Get current conditions
// @Description Current conditions at a coordinate from one source. Results are cached for 15 minutes.
// @Tags weather
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param source query string false "nws, tomorrow or synthetic" default(nws)
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} model.WeatherResult "Current conditions"
// @Failure 400 {object} model.FailureResult "Invalid coordinates or unknown source"
// @Failure 502 {object} model.FailureResult "Upstream source failure"
// @Router /weather/current [get]
func (controller *WeatherController) GetCurrent(c echo.Context) error {
	coord, err := coordinateParams(c)
	if err != nil {
		return failure(c, err)
	}

	snapshot, cached, err := controller.useCase.GetCurrent(c.Request().Context(), middleware.SessionFrom(c), coord, sourceParam(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, model.WeatherResult{
		Success: true,
		Data:    snapshot,
		Display: controller.useCase.Display(snapshot),
		Cached:  cached,
	})
}

// GetForecast godoc
// @Summary Get forecast
// @Description Daily and hourly forecast at a coordinate from one source. Results are cached for 30 minutes.
// @Tags weather
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param source query string false "nws, tomorrow or synthetic" default(nws)
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} model.ForecastResult "Forecast"
// @Failure 400 {object} model.FailureResult "Invalid coordinates or unknown source"
// @Failure 502 {object} model.FailureResult "Upstream source failure"
// @Router /weather/forecast [get]
func (controller *WeatherController) GetForecast(c echo.Context) error {
	coord, err := coordinateParams(c)
	if err != nil {
		return failure(c, err)
	}

	forecast, cached, err := controller.useCase.GetForecast(c.Request().Context(), middleware.SessionFrom(c), coord, sourceParam(c))
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, model.ForecastResult{Success: true, Data: forecast, Cached: cached})
}

// GetSources godoc
// @Summary List weather sources
// @Description Sources registered in this instance, in display order
// @Tags weather
// @Produce json
// @Success 200 {array} model.SourceInfo "Registered sources"
// @Router /weather/sources [get]
func (controller *WeatherController) GetSources(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Sources())
}
