package task_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

	var completeDTO dto.TaskCompleteRequest
	err := json.NewDecoder(r.Body).Decode(&completeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	delivered, err := h.service.CompleteDelivery(r.Context(), taskID, completeDTO.TrackingCode)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidTaskID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, task.ErrTaskNotFound):
			w.WriteHeader(http.StatusNotFound)
		// неверный код не раскрываем деталями, только статусом
		case errors.Is(err, task.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, task.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TaskStatusResponse{
		ID:          delivered.ID,
		Status:      delivered.Status.String(),
		DriverID:    delivered.DriverID,
		PickedUpAt:  delivered.PickedUpAt,
		DeliveredAt: delivered.DeliveredAt,
		UpdatedAt:   delivered.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
