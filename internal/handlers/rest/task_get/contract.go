//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=task_get_test
package task_get

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
	TaskByID(ctx context.Context, taskID string) (*entities.DeliveryTask, error)
}
