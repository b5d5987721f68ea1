package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда предложение не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrSlotNotFound возвращается, когда слот с указанным номером не существует
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotAlreadyFilled возвращается при попытке занять занятый слот
	ErrSlotAlreadyFilled = errors.New("slot already filled")

	// ErrSlotEmpty возвращается при попытке снять сотрудника с пустого слота
	ErrSlotEmpty = errors.New("slot is not filled")

	// ErrReservationFull возвращается, когда свободных слотов не осталось
	ErrReservationFull = errors.New("reservation has no free slots")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в CompanyService
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNotEditable возвращается, когда предложение нельзя менять в текущем статусе
	ErrNotEditable = errors.New("reservation cannot be modified in current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
