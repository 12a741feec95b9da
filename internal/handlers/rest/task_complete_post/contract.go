//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=task_complete_post_test
package task_complete_post

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
	CompleteDelivery(ctx context.Context, taskID, presentedCode string) (*entities.DeliveryTask, error)
}
