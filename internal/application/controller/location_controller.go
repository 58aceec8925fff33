package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-planner/internal/domain/usecase/location"
)

type LocationController struct {
	api     *echo.Group
	useCase location.UseCase
}

func NewLocationController(api *echo.Group, useCase location.UseCase) *LocationController {
	return &LocationController{api: api, useCase: useCase}
}

// InitLocationRoutes initializes location routes
func (controller *LocationController) InitLocationRoutes() {
	controller.api.GET("/locations", controller.Search)
	controller.api.GET("/locations/catalog", controller.Catalog)
}

// Search godoc
// @Summary Search locations
// @Description Resolve free text to catalog locations. An exact key match returns one result, otherwise every partial match in catalog order.
// @Tags location
// @Produce json
// @Param query query string true "Location text, e.g. donner lake"
// @Success 200 {object} model.GeocodingResult "Matching locations"
// @Failure 400 {object} model.GeocodingResult "Missing query"
// @Failure 404 {object} model.GeocodingResult "No matching location"
// @Router /locations [get]
func (controller *LocationController) Search(c echo.Context) error {
	return geocode(c, controller.useCase, c.QueryParam("query"))
}

// Catalog godoc
// @Summary List known locations
// @Tags location
// @Produce json
// @Success 200 {array} entity.NamedLocation "Catalog entries"
// @Router /locations/catalog [get]
func (controller *LocationController) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Catalog())
}
