package staffservice

import "errors"

var (
	// ErrStaffNotFound возвращается, когда стафф не найден
	ErrStaffNotFound = errors.New("staff not found")

	// ErrStaffInactive возвращается, когда стафф деактивирован
	ErrStaffInactive = errors.New("staff is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
