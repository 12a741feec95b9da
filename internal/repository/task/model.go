package task

import "time"

type TaskDB struct {
	ID               string
	TrackingCode     string
	ConfirmationCode string

	SenderID string
	DriverID *string

	ReceiverName  string
	ReceiverPhone string

	PickupAddress     string
	PickupLatitude    float64
	PickupLongitude   float64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64

	PackageDescription string
	DeliveryAmount     float64

	Status string

	EstimatedDeliveryTime *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Metadata сырой jsonb из task_integration, nil если строки нет.
	Metadata []byte
}
