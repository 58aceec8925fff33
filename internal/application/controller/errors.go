package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
	"weather-planner/pkg/util/numberutils"
)

// statusFor maps a domain failure to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrLocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrUnknownSource),
		errors.Is(err, model.ErrDateOutOfRange),
		errors.Is(err, model.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNoForecastForDate):
		return http.StatusUnprocessableEntity
	case model.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// failure writes the uniform {success:false, message} body for err
func failure(c echo.Context, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(err.Error(), zap.String("uri", c.Request().RequestURI), zap.Int("status", status))
	}
	return c.JSON(status, model.Failure(model.UserMessage(err)))
}

func invalidRequest(key string, args ...interface{}) error {
	return model.NewError(model.ErrInvalidRequest, msg.GetMessage(key, args...), nil)
}

// coordinateParams reads the lat and lon query parameters
func coordinateParams(c echo.Context) (entity.Coordinate, error) {
	lat, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	lon, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return entity.Coordinate{}, invalidRequest("request.invalid-coordinates")
	}
	return entity.Coordinate{Latitude: lat, Longitude: lon}, nil
}
