package task_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var taskCreateDTO dto.TaskCreate
	err := json.NewDecoder(r.Body).Decode(&taskCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	newTask := entities.NewTask{
		SenderID:              taskCreateDTO.SenderID,
		ReceiverName:          taskCreateDTO.ReceiverName,
		ReceiverPhone:         taskCreateDTO.ReceiverPhone,
		PickupAddress:         taskCreateDTO.PickupAddress,
		PickupLatitude:        taskCreateDTO.PickupLatitude,
		PickupLongitude:       taskCreateDTO.PickupLongitude,
		DeliveryAddress:       taskCreateDTO.DeliveryAddress,
		DeliveryLatitude:      taskCreateDTO.DeliveryLatitude,
		DeliveryLongitude:     taskCreateDTO.DeliveryLongitude,
		PackageDescription:    taskCreateDTO.PackageDescription,
		DeliveryAmount:        taskCreateDTO.DeliveryAmount,
		EstimatedDeliveryTime: taskCreateDTO.EstimatedDeliveryTime,
		Integration:           integrationFromDTO(taskCreateDTO.Integration),
	}

	created, err := h.service.CreateTask(r.Context(), newTask)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrMissingRequiredFields),
			errors.Is(err, task.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, task.ErrDuplicateCode),
			errors.Is(err, task.ErrTaskAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TaskCreateResponse{
		ID:               created.ID,
		TrackingCode:     created.TrackingCode,
		ConfirmationCode: created.ConfirmationCode,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func integrationFromDTO(meta *dto.IntegrationMetadata) entities.IntegrationMetadata {
	if meta == nil {
		return entities.IntegrationMetadata{}
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	result := entities.IntegrationMetadata{
		VendorWhatsapp:       deref(meta.VendorWhatsapp),
		CustomerWhatsapp:     deref(meta.CustomerWhatsapp),
		VendorCounty:         deref(meta.VendorCounty),
		VendorConstituency:   deref(meta.VendorConstituency),
		VendorWard:           deref(meta.VendorWard),
		CustomerCounty:       deref(meta.CustomerCounty),
		CustomerConstituency: deref(meta.CustomerConstituency),
		CustomerWard:         deref(meta.CustomerWard),
		OriginalOrderID:      deref(meta.OriginalOrderID),
	}
	if meta.DistanceKm != nil {
		result.DistanceKm = *meta.DistanceKm
	}
	return result
}
