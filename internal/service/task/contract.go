//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=task_test
package task

import (
	"context"
	"time"

	"fikisha/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, taskEntity *entities.DeliveryTask) (*entities.DeliveryTask, error)
	SaveIntegration(ctx context.Context, taskID string, meta entities.IntegrationMetadata) error

	Claim(ctx context.Context, taskID, driverID string) (*entities.DeliveryTask, error)
	Advance(ctx context.Context, taskID string, from []entities.TaskStatusType, to entities.TaskStatusType) (*entities.DeliveryTask, error)

	GetByID(ctx context.Context, taskID string) (*entities.DeliveryTask, error)
	GetByTrackingCode(ctx context.Context, trackingCode string) (*entities.DeliveryTask, error)
	ListAvailable(ctx context.Context) ([]entities.DeliveryTask, error)
	ListForDriver(ctx context.Context, driverID string, statuses []entities.TaskStatusType) ([]entities.DeliveryTask, error)
	CountByStatus(ctx context.Context) (map[entities.TaskStatusType]int64, error)

	CancelStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type CodeFactory interface {
	TrackingCode() string
	ConfirmationCode() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
