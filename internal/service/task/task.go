package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fikisha/internal/entities"
)

// создание повторяется с новыми кодами при коллизии уникального индекса
const maxCodeAttempts = 3

// pending-задача без водителя старше этого возраста считается брошенной
const stalePendingAge = 24 * time.Hour

var activeDriverStatuses = []entities.TaskStatusType{
	entities.TaskAccepted,
	entities.TaskPickedUp,
	entities.TaskOutForDelivery,
}

// Task сервис жизненного цикла задач доставки.
// Все переходы статусов выполняются условными апдейтами на стороне
// хранилища, сервис никогда не делает слепой read-modify-write.
type Task struct {
	repository Repository
	codes      CodeFactory
	txManager  TxManager
}

func New(repository Repository, codes CodeFactory, txManager TxManager) *Task {
	return &Task{
		repository: repository,
		codes:      codes,
		txManager:  txManager,
	}
}

// CreateTask создает задачу в статусе pending с generated-кодами.
// Задача и строка метаданных интеграции пишутся одной транзакцией.
func (t *Task) CreateTask(ctx context.Context, newTask entities.NewTask) (*entities.DeliveryTask, error) {
	if err := validateNewTask(&newTask); err != nil {
		return nil, err
	}

	var created *entities.DeliveryTask

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		taskEntity := &entities.DeliveryTask{
			ID:                    uuid.NewString(),
			TrackingCode:          t.codes.TrackingCode(),
			ConfirmationCode:      t.codes.ConfirmationCode(),
			SenderID:              newTask.SenderID,
			ReceiverName:          newTask.ReceiverName,
			ReceiverPhone:         newTask.ReceiverPhone,
			PickupAddress:         newTask.PickupAddress,
			PickupLatitude:        newTask.PickupLatitude,
			PickupLongitude:       newTask.PickupLongitude,
			DeliveryAddress:       newTask.DeliveryAddress,
			DeliveryLatitude:      newTask.DeliveryLatitude,
			DeliveryLongitude:     newTask.DeliveryLongitude,
			PackageDescription:    newTask.PackageDescription,
			DeliveryAmount:        newTask.DeliveryAmount,
			Status:                entities.TaskPending,
			EstimatedDeliveryTime: newTask.EstimatedDeliveryTime,
			Integration:           newTask.Integration,
		}

		err := t.txManager.Do(ctx, func(ctx context.Context) error {
			inserted, err := t.repository.Create(ctx, taskEntity)
			if err != nil {
				return fmt.Errorf("create task: %w", err)
			}

			if !newTask.Integration.Empty() {
				if err := t.repository.SaveIntegration(ctx, inserted.ID, newTask.Integration); err != nil {
					return fmt.Errorf("save integration metadata: %w", err)
				}
			}

			created = inserted
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrDuplicateCode) {
				continue
			}
			return nil, err
		}

		return created, nil
	}

	return nil, fmt.Errorf("create task after %d attempts: %w", maxCodeAttempts, ErrDuplicateCode)
}

// AcceptTask принятие задачи водителем. Ровно один водитель выигрывает
// гонку за pending-задачу, остальные получают ErrTaskAlreadyClaimed.
func (t *Task) AcceptTask(ctx context.Context, taskID, driverID string) (*entities.DeliveryTask, error) {
	if isBlank(taskID) {
		return nil, ErrInvalidTaskID
	}
	if isBlank(driverID) {
		return nil, ErrInvalidDriverID
	}

	claimed, err := t.repository.Claim(ctx, taskID, driverID)
	if err != nil {
		return nil, fmt.Errorf("claim task: %w", err)
	}
	return claimed, nil
}

// MarkPickedUp переход accepted -> picked_up, хранилище ставит picked_up_at.
func (t *Task) MarkPickedUp(ctx context.Context, taskID string) (*entities.DeliveryTask, error) {
	if isBlank(taskID) {
		return nil, ErrInvalidTaskID
	}

	advanced, err := t.repository.Advance(
		ctx,
		taskID,
		[]entities.TaskStatusType{entities.TaskAccepted},
		entities.TaskPickedUp,
	)
	if err != nil {
		return nil, fmt.Errorf("mark picked up: %w", err)
	}
	return advanced, nil
}

// MarkOutForDelivery переход picked_up -> out_for_delivery.
// Шаг необязательный, завершение возможно и напрямую из picked_up.
func (t *Task) MarkOutForDelivery(ctx context.Context, taskID string) (*entities.DeliveryTask, error) {
	if isBlank(taskID) {
		return nil, ErrInvalidTaskID
	}

	advanced, err := t.repository.Advance(
		ctx,
		taskID,
		[]entities.TaskStatusType{entities.TaskPickedUp},
		entities.TaskOutForDelivery,
	)
	if err != nil {
		return nil, fmt.Errorf("mark out for delivery: %w", err)
	}
	return advanced, nil
}

// CompleteDelivery завершение доставки по коду отслеживания.
// Проверяется именно tracking_code: confirmation_code хранится и отдается
// отправителю, но в подтверждении вручения не участвует.
// Коды неизменны, поэтому проверка по прочитанному снимку безопасна,
// сам переход остается условным апдейтом.
func (t *Task) CompleteDelivery(ctx context.Context, taskID, presentedCode string) (*entities.DeliveryTask, error) {
	if isBlank(taskID) {
		return nil, ErrInvalidTaskID
	}
	if isBlank(presentedCode) {
		return nil, ErrInvalidTrackingCode
	}

	taskEntity, err := t.repository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task for completion: %w", err)
	}

	if normalizeCode(presentedCode) != taskEntity.TrackingCode {
		return nil, ErrInvalidTrackingCode
	}

	advanced, err := t.repository.Advance(
		ctx,
		taskID,
		[]entities.TaskStatusType{entities.TaskPickedUp, entities.TaskOutForDelivery},
		entities.TaskDelivered,
	)
	if err != nil {
		return nil, fmt.Errorf("complete delivery: %w", err)
	}
	return advanced, nil
}

// CancelTask отмена: только из pending или accepted.
func (t *Task) CancelTask(ctx context.Context, taskID string) (*entities.DeliveryTask, error) {
	if isBlank(taskID) {
		return nil, ErrInvalidTaskID
	}

	cancelled, err := t.repository.Advance(
		ctx,
		taskID,
		[]entities.TaskStatusType{entities.TaskPending, entities.TaskAccepted},
		entities.TaskCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel task: %w", err)
	}
	return cancelled, nil
}

func (t *Task) TaskByID(ctx context.Context, taskID string) (*entities.DeliveryTask, error) {
	if isBlank(taskID) {
		return nil, ErrInvalidTaskID
	}

	taskEntity, err := t.repository.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return taskEntity, nil
}

// TrackByCode публичный поиск задачи по коду отслеживания.
func (t *Task) TrackByCode(ctx context.Context, trackingCode string) (*entities.DeliveryTask, error) {
	if isBlank(trackingCode) {
		return nil, ErrInvalidTrackingCode
	}

	taskEntity, err := t.repository.GetByTrackingCode(ctx, normalizeCode(trackingCode))
	if err != nil {
		return nil, fmt.Errorf("track by code: %w", err)
	}
	return taskEntity, nil
}

// AvailableTasks витрина доступных задач для водителей: pending без
// водителя, от старых к новым, с распакованными метаданными интеграции.
func (t *Task) AvailableTasks(ctx context.Context) ([]entities.DeliveryTask, error) {
	tasks, err := t.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available tasks: %w", err)
	}
	return tasks, nil
}

// DriverTasks активные задачи водителя, от новых к старым.
func (t *Task) DriverTasks(ctx context.Context, driverID string) ([]entities.DeliveryTask, error) {
	if isBlank(driverID) {
		return nil, ErrInvalidDriverID
	}

	tasks, err := t.repository.ListForDriver(ctx, driverID, activeDriverStatuses)
	if err != nil {
		return nil, fmt.Errorf("list driver tasks: %w", err)
	}
	return tasks, nil
}

// CleanupStaleTasks отменяет pending-задачи, которые никто не принял
// за stalePendingAge. Возвращает количество отмененных задач.
func (t *Task) CleanupStaleTasks(ctx context.Context) (int64, error) {
	cancelled, err := t.repository.CancelStale(ctx, stalePendingAge)
	if err != nil {
		return 0, fmt.Errorf("cleanup stale tasks: %w", err)
	}
	return cancelled, nil
}

// StatusCounts количество задач по статусам, питает метрики дашборда.
func (t *Task) StatusCounts(ctx context.Context) (map[entities.TaskStatusType]int64, error) {
	counts, err := t.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks by status: %w", err)
	}
	return counts, nil
}
