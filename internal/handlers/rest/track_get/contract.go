//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_get_test
package track_get

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
	TrackByCode(ctx context.Context, trackingCode string) (*entities.DeliveryTask, error)
}
