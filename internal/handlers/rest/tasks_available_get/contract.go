//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tasks_available_get_test
package tasks_available_get

import (
	"context"

	"fikisha/internal/entities"
	"fikisha/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AvailableTasks(ctx context.Context) ([]entities.DeliveryTask, error)
}
