package task

import (
	"encoding/json"

	"fikisha/internal/entities"
)

func ToDomain(t *TaskDB) *entities.DeliveryTask {
	if t == nil {
		return nil
	}

	taskDomain := &entities.DeliveryTask{
		ID:                    t.ID,
		TrackingCode:          t.TrackingCode,
		ConfirmationCode:      t.ConfirmationCode,
		SenderID:              t.SenderID,
		DriverID:              t.DriverID,
		ReceiverName:          t.ReceiverName,
		ReceiverPhone:         t.ReceiverPhone,
		PickupAddress:         t.PickupAddress,
		PickupLatitude:        t.PickupLatitude,
		PickupLongitude:       t.PickupLongitude,
		DeliveryAddress:       t.DeliveryAddress,
		DeliveryLatitude:      t.DeliveryLatitude,
		DeliveryLongitude:     t.DeliveryLongitude,
		PackageDescription:    t.PackageDescription,
		DeliveryAmount:        t.DeliveryAmount,
		Status:                entities.TaskStatusType(t.Status),
		EstimatedDeliveryTime: t.EstimatedDeliveryTime,
		PickedUpAt:            t.PickedUpAt,
		DeliveredAt:           t.DeliveredAt,
		CreatedAt:             t.CreatedAt,
		UpdatedAt:             t.UpdatedAt,
	}

	// fail open: битые метаданные не прячут задачу из выборок,
	// отдаем ее с пустой интеграцией
	if len(t.Metadata) > 0 {
		var meta entities.IntegrationMetadata
		if err := json.Unmarshal(t.Metadata, &meta); err == nil {
			taskDomain.Integration = meta
		}
	}

	return taskDomain
}
