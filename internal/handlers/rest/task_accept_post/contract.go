//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=task_accept_post_test
package task_accept_post

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
	AcceptTask(ctx context.Context, taskID, driverID string) (*entities.DeliveryTask, error)
}
