package task

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTaskID         = errors.New("invalid task id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidAmount         = errors.New("delivery amount must be positive")

	// ErrDuplicateCode коллизия сгенерированного кода, внутренняя ситуация:
	// сервис сам перегенерирует коды, наружу уходит только после
	// исчерпания попыток.
	ErrDuplicateCode = errors.New("tracking or confirmation code already in use")

	ErrTaskAlreadyExists = errors.New("task already exists")
	ErrTaskNotFound      = errors.New("task not found")

	// ErrTaskAlreadyClaimed ожидаемый исход гонки принятия: другой водитель
	// успел раньше. Не системный сбой, вызывающая сторона показывает
	// "заказ уже недоступен".
	ErrTaskAlreadyClaimed = errors.New("task already claimed by another driver")

	ErrInvalidTransition   = errors.New("invalid task status transition")
	ErrInvalidTrackingCode = errors.New("tracking code does not match")
)
