package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-planner/internal/application/middleware"
	"weather-planner/internal/domain/model"
	"weather-planner/internal/domain/usecase/planner"
)

type PlannerController struct {
	api     *echo.Group
	useCase planner.UseCase
}

func NewPlannerController(api *echo.Group, useCase planner.UseCase) *PlannerController {
	return &PlannerController{api: api, useCase: useCase}
}

// InitPlannerRoutes initializes planner routes
func (controller *PlannerController) InitPlannerRoutes() {
	controller.api.POST("/plans", controller.CreatePlan)
	controller.api.POST("/planner/messages", controller.SendMessage)
}

// CreatePlan godoc
// @Summary Generate a day plan
// @Description Build a morning, afternoon and evening plan for a catalog location from its daily forecast
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.PlanRequest true "Location, date (YYYY-MM-DD) and preferences"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} model.PlanResult "Generated plan"
// @Failure 400 {object} model.FailureResult "Invalid body, date out of range or unknown source"
// @Failure 404 {object} model.FailureResult "Location not found"
// @Failure 422 {object} model.FailureResult "No forecast for the requested date"
// @Failure 502 {object} model.FailureResult "Upstream source failure"
// @Router /plans [post]
func (controller *PlannerController) CreatePlan(c echo.Context) error {
	var request model.PlanRequest
	if err := c.Bind(&request); err != nil {
		return failure(c, invalidRequest("request.invalid-body"))
	}

	result, err := controller.useCase.Generate(c.Request().Context(), middleware.SessionFrom(c), request)
	if err != nil {
		return failure(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// SendMessage godoc
// @Summary Chat with the planner
// @Description Extract location, date and preferences from a message and answer with a question, an error or a plan
// @Tags planner
// @Accept json
// @Produce json
// @Param request body model.ChatRequest true "User message"
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} model.ChatReply "Planner reply"
// @Failure 400 {object} model.FailureResult "Missing message"
// @Router /planner/messages [post]
func (controller *PlannerController) SendMessage(c echo.Context) error {
	var request model.ChatRequest
	if err := c.Bind(&request); err != nil {
		return failure(c, invalidRequest("request.invalid-body"))
	}
	if strings.TrimSpace(request.Message) == "" {
		return failure(c, invalidRequest("request.message-required"))
	}

	reply := controller.useCase.Converse(c.Request().Context(), middleware.SessionFrom(c), request.Message)
	return c.JSON(http.StatusOK, reply)
}
