package track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fikisha/internal/generated/dto"
	"fikisha/internal/service/task"
	"fikisha/pkg/logger"
)

// Публичная точка отслеживания: без телефонов, кодов и сумм.
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
	trackingCode := mux.Vars(r)["code"]

	taskEntity, err := h.service.TrackByCode(r.Context(), trackingCode)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, task.ErrTaskNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	trackingDTO := dto.TrackingInfo{
		TrackingCode:          taskEntity.TrackingCode,
		Status:                taskEntity.Status.String(),
		PickupAddress:         taskEntity.PickupAddress,
		DeliveryAddress:       taskEntity.DeliveryAddress,
		EstimatedDeliveryTime: taskEntity.EstimatedDeliveryTime,
		PickedUpAt:            taskEntity.PickedUpAt,
		DeliveredAt:           taskEntity.DeliveredAt,
		CreatedAt:             taskEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(trackingDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
