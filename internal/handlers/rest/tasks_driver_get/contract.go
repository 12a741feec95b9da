//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tasks_driver_get_test
package tasks_driver_get

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
	DriverTasks(ctx context.Context, driverID string) ([]entities.DeliveryTask, error)
}
