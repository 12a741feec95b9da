//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=task_post_test
package task_post

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
	CreateTask(ctx context.Context, newTask entities.NewTask) (*entities.DeliveryTask, error)
}
