package task

import (
	"github.com/jackc/pgx/v5"

	"fikisha/internal/entities"
)

const joinedColumns = `t.id, t.tracking_code, t.confirmation_code, t.sender_id, t.driver_id,
		t.receiver_name, t.receiver_phone,
		t.pickup_address, t.pickup_latitude, t.pickup_longitude,
		t.delivery_address, t.delivery_latitude, t.delivery_longitude,
		t.package_description, t.delivery_amount, t.status,
		t.estimated_delivery_time, t.picked_up_at, t.delivered_at, t.created_at, t.updated_at,
		ti.metadata`

func selectJoined(tail string) string {
	return `SELECT ` + joinedColumns + `
		FROM tasks t
		LEFT JOIN task_integration ti ON ti.task_id = t.id
		` + tail
}

func scanTask(row pgx.Row) (*entities.DeliveryTask, error) {
	var taskDB TaskDB
	err := row.Scan(
		&taskDB.ID,
		&taskDB.TrackingCode,
		&taskDB.ConfirmationCode,
		&taskDB.SenderID,
		&taskDB.DriverID,
		&taskDB.ReceiverName,
		&taskDB.ReceiverPhone,
		&taskDB.PickupAddress,
		&taskDB.PickupLatitude,
		&taskDB.PickupLongitude,
		&taskDB.DeliveryAddress,
		&taskDB.DeliveryLatitude,
		&taskDB.DeliveryLongitude,
		&taskDB.PackageDescription,
		&taskDB.DeliveryAmount,
		&taskDB.Status,
		&taskDB.EstimatedDeliveryTime,
		&taskDB.PickedUpAt,
		&taskDB.DeliveredAt,
		&taskDB.CreatedAt,
		&taskDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&taskDB), nil
}

func scanJoinedTask(row pgx.Row) (*entities.DeliveryTask, error) {
	var taskDB TaskDB
	err := row.Scan(
		&taskDB.ID,
		&taskDB.TrackingCode,
		&taskDB.ConfirmationCode,
		&taskDB.SenderID,
		&taskDB.DriverID,
		&taskDB.ReceiverName,
		&taskDB.ReceiverPhone,
		&taskDB.PickupAddress,
		&taskDB.PickupLatitude,
		&taskDB.PickupLongitude,
		&taskDB.DeliveryAddress,
		&taskDB.DeliveryLatitude,
		&taskDB.DeliveryLongitude,
		&taskDB.PackageDescription,
		&taskDB.DeliveryAmount,
		&taskDB.Status,
		&taskDB.EstimatedDeliveryTime,
		&taskDB.PickedUpAt,
		&taskDB.DeliveredAt,
		&taskDB.CreatedAt,
		&taskDB.UpdatedAt,
		&taskDB.Metadata,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&taskDB), nil
}

func collectTasks(rows pgx.Rows) ([]entities.DeliveryTask, error) {
	tasks := make([]entities.DeliveryTask, 0, 16)
	for rows.Next() {
		taskEntity, err := scanJoinedTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *taskEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}
