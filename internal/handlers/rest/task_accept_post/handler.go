package task_accept_post

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

	var acceptDTO dto.TaskAcceptRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	claimed, err := h.service.AcceptTask(r.Context(), taskID, acceptDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrInvalidTaskID),
			errors.Is(err, task.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, task.ErrTaskNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, task.ErrTaskAlreadyClaimed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.TaskStatusResponse{
		ID:          claimed.ID,
		Status:      claimed.Status.String(),
		DriverID:    claimed.DriverID,
		PickedUpAt:  claimed.PickedUpAt,
		DeliveredAt: claimed.DeliveredAt,
		UpdatedAt:   claimed.UpdatedAt,
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
