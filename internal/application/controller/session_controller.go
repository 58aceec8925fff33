package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weather-planner/internal/domain/gateway/session"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/msg"
)

type SessionController struct {
	api     *echo.Group
	gateway session.Gateway
}

func NewSessionController(api *echo.Group, gateway session.Gateway) *SessionController {
	return &SessionController{api: api, gateway: gateway}
}

// InitSessionRoutes initializes session routes
func (controller *SessionController) InitSessionRoutes() {
	controller.api.GET("/sessions/:id", controller.FindByID)
	controller.api.DELETE("/sessions/:id", controller.DeleteByID)
}

// FindByID godoc
// @Summary Get a session
// @Description Conversation history and activity trail of a live session
// @Tags session
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.SessionView "Session"
// @Failure 404 {object} model.FailureResult "Session not found or expired"
// @Router /sessions/{id} [get]
func (controller *SessionController) FindByID(c echo.Context) error {
	id := c.Param("id")
	current, ok := controller.gateway.Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, model.Failure(msg.GetMessage("request.session-not-found", id)))
	}

	return c.JSON(http.StatusOK, model.SessionView{
		ID:        current.ID,
		CreatedAt: current.CreatedAt.Format(time.RFC3339),
		LastSeen:  current.LastSeen().Format(time.RFC3339),
		History:   current.History(),
		Trail:     current.Trail(),
	})
}

// DeleteByID godoc
// @Summary End a session
// @Tags session
// @Param id path string true "Session id"
// @Success 204 "Session removed"
// @Router /sessions/{id} [delete]
func (controller *SessionController) DeleteByID(c echo.Context) error {
	controller.gateway.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
