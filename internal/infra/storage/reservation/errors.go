package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда предложение не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")

	// ErrEncodeSlots возвращается при ошибке сериализации слотов в JSON
	ErrEncodeSlots = errors.New("reservation.repository: failed to encode time slots")

	// ErrDecodeSlots возвращается при ошибке десериализации слотов из JSON
	ErrDecodeSlots = errors.New("reservation.repository: failed to decode time slots")
)
