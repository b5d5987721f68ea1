package create_offer

import "errors"

var (
	// ErrReservationNotFound возвращается, когда предложение не найдено
	ErrReservationNotFound = errors.New("create_offer: reservation not found")

	// ErrStaffNotFound возвращается, когда стафф не найден
	ErrStaffNotFound = errors.New("create_offer: staff not found")

	// ErrStaffInactive возвращается, когда стафф деактивирован
	ErrStaffInactive = errors.New("create_offer: staff is inactive")

	// ErrNotAcceptingOffers возвращается, когда предложение уже не принимает офферы
	ErrNotAcceptingOffers = errors.New("create_offer: reservation is not accepting offers")

	// ErrDuplicateAssignment возвращается, когда у стаффа уже есть активный ассайн
	// на это предложение
	ErrDuplicateAssignment = errors.New("create_offer: staff already has an active assignment")

	// ErrSlotNotFound возвращается, когда слот с указанным номером не существует
	ErrSlotNotFound = errors.New("create_offer: slot not found")

	// ErrSlotTaken возвращается в слотовом режиме, когда на слоте уже есть
	// активный ассайн
	ErrSlotTaken = errors.New("create_offer: slot already has an active assignment")

	// ErrCapacityExceeded возвращается при включенном контроле вместимости,
	// когда свободных мест не осталось
	ErrCapacityExceeded = errors.New("create_offer: reservation capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_offer: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_offer: internal error")
)
