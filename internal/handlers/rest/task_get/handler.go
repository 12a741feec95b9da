package task_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fikisha/internal/entities"
	"fikisha/internal/generated/dto"
	"fikisha/internal/service/task"
	"fikisha/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	taskEntity, err := h.service.TaskByID(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTaskNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, task.ErrInvalidTaskID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	taskDTO := taskToDTO(taskEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(taskDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func taskToDTO(taskEntity *entities.DeliveryTask) dto.Task {
	return dto.Task{
		ID:                    taskEntity.ID,
		TrackingCode:          taskEntity.TrackingCode,
		ConfirmationCode:      taskEntity.ConfirmationCode,
		SenderID:              taskEntity.SenderID,
		DriverID:              taskEntity.DriverID,
		ReceiverName:          taskEntity.ReceiverName,
		ReceiverPhone:         taskEntity.ReceiverPhone,
		PickupAddress:         taskEntity.PickupAddress,
		PickupLatitude:        taskEntity.PickupLatitude,
		PickupLongitude:       taskEntity.PickupLongitude,
		DeliveryAddress:       taskEntity.DeliveryAddress,
		DeliveryLatitude:      taskEntity.DeliveryLatitude,
		DeliveryLongitude:     taskEntity.DeliveryLongitude,
		PackageDescription:    taskEntity.PackageDescription,
		DeliveryAmount:        taskEntity.DeliveryAmount,
		Status:                taskEntity.Status.String(),
		EstimatedDeliveryTime: taskEntity.EstimatedDeliveryTime,
		PickedUpAt:            taskEntity.PickedUpAt,
		DeliveredAt:           taskEntity.DeliveredAt,
		CreatedAt:             taskEntity.CreatedAt,
		UpdatedAt:             taskEntity.UpdatedAt,
		Integration:           integrationToDTO(taskEntity.Integration),
	}
}

func integrationToDTO(meta entities.IntegrationMetadata) *dto.IntegrationMetadata {
	if meta.Empty() {
		return nil
	}

	opt := func(s string) *string {
		if s == "" {
			return nil
		}
		return &s
	}

	result := &dto.IntegrationMetadata{
		VendorWhatsapp:       opt(meta.VendorWhatsapp),
		CustomerWhatsapp:     opt(meta.CustomerWhatsapp),
		VendorCounty:         opt(meta.VendorCounty),
		VendorConstituency:   opt(meta.VendorConstituency),
		VendorWard:           opt(meta.VendorWard),
		CustomerCounty:       opt(meta.CustomerCounty),
		CustomerConstituency: opt(meta.CustomerConstituency),
		CustomerWard:         opt(meta.CustomerWard),
		OriginalOrderID:      opt(meta.OriginalOrderID),
	}
	if meta.DistanceKm != 0 {
		result.DistanceKm = &meta.DistanceKm
	}
	return result
}
