package create_offer

import "time"

// Request модель запроса на создание оффера
// SlotNumber обязателен в слотовом режиме и игнорируется в оконном
type Request struct {
	ReservationID int64
	StaffID       int64
	SlotNumber    *int
	Notes         *string
}

// Response модель ответа с созданным оффером
type Response struct {
	ID            int64
	ReservationID int64
	StaffID       int64
	SlotNumber    *int
	Status        string
	AssignedAt    time.Time
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
