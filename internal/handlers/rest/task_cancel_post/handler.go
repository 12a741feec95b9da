package task_cancel_post

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

	cancelled, err := h.service.CancelTask(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidTaskID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, task.ErrTaskNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, task.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TaskStatusResponse{
		ID:          cancelled.ID,
		Status:      cancelled.Status.String(),
		DriverID:    cancelled.DriverID,
		PickedUpAt:  cancelled.PickedUpAt,
		DeliveredAt: cancelled.DeliveredAt,
		UpdatedAt:   cancelled.UpdatedAt,
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
