package assignments

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда ассайн не найден
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrReservationNotFound возвращается, когда предложение не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда стафф отвечает на чужой оффер
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidState возвращается, когда ответ на оффер уже невозможен
	ErrInvalidState = errors.New("assignment is not awaiting response")

	// ErrCapacityExceeded возвращается при включенном контроле вместимости,
	// когда акцепт превысил бы заявленную вместимость предложения
	ErrCapacityExceeded = errors.New("reservation capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
