package entities

import "time"

// DeliveryTask заказ на доставку. Центральная сущность сервиса.
//
// TrackingCode и ConfirmationCode генерируются один раз при создании
// и неизменны. DriverID переходит nil -> not-nil ровно один раз
// при принятии задачи водителем.
type DeliveryTask struct {
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

	Status TaskStatusType

	EstimatedDeliveryTime *time.Time
	PickedUpAt            *time.Time
	DeliveredAt           *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time

	// Integration опциональные сквозные данные ecommerce-интеграции.
	// Пустая структура если их не было или они не распарсились.
	Integration IntegrationMetadata
}

type TaskStatusType string

const (
	TaskPending        TaskStatusType = "pending"
	TaskAccepted       TaskStatusType = "accepted"
	TaskPickedUp       TaskStatusType = "picked_up"
	TaskOutForDelivery TaskStatusType = "out_for_delivery"
	TaskDelivered      TaskStatusType = "delivered"
	TaskCancelled      TaskStatusType = "cancelled"
)

func (s TaskStatusType) String() string {
	return string(s)
}

// Terminal задача в конечном статусе, дальнейшие переходы невозможны.
func (s TaskStatusType) Terminal() bool {
	return s == TaskDelivered || s == TaskCancelled
}

// NewTask входные данные создания задачи.
// Коды и статус проставляет сервис, не вызывающая сторона.
type NewTask struct {
	SenderID string

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

	EstimatedDeliveryTime *time.Time

	Integration IntegrationMetadata
}

// IntegrationMetadata сквозные поля ecommerce-интеграции.
// Хранятся отдельной строкой task_integration и возвращаются
// выборками без изменений.
type IntegrationMetadata struct {
	VendorWhatsapp       string  `json:"vendor_whatsapp,omitempty"`
	CustomerWhatsapp     string  `json:"customer_whatsapp,omitempty"`
	VendorCounty         string  `json:"vendor_county,omitempty"`
	VendorConstituency   string  `json:"vendor_constituency,omitempty"`
	VendorWard           string  `json:"vendor_ward,omitempty"`
	CustomerCounty       string  `json:"customer_county,omitempty"`
	CustomerConstituency string  `json:"customer_constituency,omitempty"`
	CustomerWard         string  `json:"customer_ward,omitempty"`
	DistanceKm           float64 `json:"distance_km,omitempty"`
	OriginalOrderID      string  `json:"original_order_id,omitempty"`
}

// Empty true если ни одно поле интеграции не заполнено.
func (m IntegrationMetadata) Empty() bool {
	return m == IntegrationMetadata{}
}
