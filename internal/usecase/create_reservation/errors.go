package create_reservation

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("create_reservation: company not found")

	// ErrCompanyInactive возвращается, когда контракт компании не активен
	ErrCompanyInactive = errors.New("create_reservation: company contract is not active")

	// ErrWindowTooShort возвращается, когда в окно не помещается ни один слот
	ErrWindowTooShort = errors.New("create_reservation: time window is too short for a single slot")

	// ErrInvalidDate возвращается при дате выезда в прошлом
	ErrInvalidDate = errors.New("create_reservation: reservation date is in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
