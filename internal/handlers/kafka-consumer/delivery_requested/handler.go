package delivery_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"fikisha/internal/entities"
	taskservice "fikisha/internal/service/task"
	"fikisha/pkg/logger"
)

// requestedEvent событие ecommerce-платформы о новом заказе на доставку.
type requestedEvent struct {
	SenderID              string     `json:"sender_id"`
	ReceiverName          string     `json:"receiver_name"`
	ReceiverPhone         string     `json:"receiver_phone"`
	PickupAddress         string     `json:"pickup_address"`
	PickupLatitude        float64    `json:"pickup_latitude"`
	PickupLongitude       float64    `json:"pickup_longitude"`
	DeliveryAddress       string     `json:"delivery_address"`
	DeliveryLatitude      float64    `json:"delivery_latitude"`
	DeliveryLongitude     float64    `json:"delivery_longitude"`
	PackageDescription    string     `json:"package_description"`
	DeliveryAmount        float64    `json:"delivery_amount"`
	EstimatedDeliveryTime *time.Time `json:"estimated_delivery_time,omitempty"`

	Integration entities.IntegrationMetadata `json:"integration"`
}

type Handler struct {
	taskService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, taskService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		taskService:              taskService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("delivery.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("delivery.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("delivery.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("sender", event.SenderID),
		logger.NewField("original_order", event.Integration.OriginalOrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.requested processing")

	newTask := entities.NewTask{
		SenderID:              event.SenderID,
		ReceiverName:          event.ReceiverName,
		ReceiverPhone:         event.ReceiverPhone,
		PickupAddress:         event.PickupAddress,
		PickupLatitude:        event.PickupLatitude,
		PickupLongitude:       event.PickupLongitude,
		DeliveryAddress:       event.DeliveryAddress,
		DeliveryLatitude:      event.DeliveryLatitude,
		DeliveryLongitude:     event.DeliveryLongitude,
		PackageDescription:    event.PackageDescription,
		DeliveryAmount:        event.DeliveryAmount,
		EstimatedDeliveryTime: event.EstimatedDeliveryTime,
		Integration:           event.Integration,
	}

	created, err := h.taskService.CreateTask(ctx, newTask)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.requested handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, taskservice.ErrMissingRequiredFields),
			errors.Is(err, taskservice.ErrInvalidAmount):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.requested handler invalid event payload")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.requested handler failed to create task")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("task", created.ID),
		logger.NewField("tracking_code", created.TrackingCode),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("delivery.requested: task created")

	sess.MarkMessage(message, "")
	return false
}
