package planner

import (
	"context"

	"weather-planner/internal/domain/entity"
	"weather-planner/internal/domain/model"
)

type UseCase interface {
	// Generate builds a day plan for a named location. The date must fall within the forecast horizon.
	Generate(ctx context.Context, session *entity.Session, request model.PlanRequest) (*model.PlanResult, error)

	// Converse answers a free-text planning message with a question, an error or a plan
	Converse(ctx context.Context, session *entity.Session, message string) *model.ChatReply
}
