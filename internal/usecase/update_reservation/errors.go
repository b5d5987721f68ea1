package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда предложение не найдено
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrNotEditable возвращается, когда предложение нельзя менять в текущем статусе
	ErrNotEditable = errors.New("update_reservation: reservation cannot be modified in current status")

	// ErrWindowTooShort возвращается, когда в новое окно не помещается ни один слот
	ErrWindowTooShort = errors.New("update_reservation: time window is too short for a single slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
