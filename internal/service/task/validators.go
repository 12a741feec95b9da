package task

import (
	"strings"

	"fikisha/internal/entities"
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateNewTask(newTask *entities.NewTask) error {
	if isBlank(newTask.SenderID) ||
		isBlank(newTask.ReceiverName) ||
		isBlank(newTask.ReceiverPhone) ||
		isBlank(newTask.PickupAddress) ||
		isBlank(newTask.DeliveryAddress) {
		return ErrMissingRequiredFields
	}
	if newTask.DeliveryAmount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
