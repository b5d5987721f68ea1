package domain

import "time"

// AssignmentStatus статус ассайна (жизненный цикл на стороне стаффа)
type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"   // Оффер отправлен, ждем ответа стаффа
	AssignmentConfirmed AssignmentStatus = "confirmed" // Стафф принял оффер
	AssignmentCompleted AssignmentStatus = "completed" // Выезд отработан
	AssignmentRejected  AssignmentStatus = "rejected"  // Стафф отклонил оффер
	AssignmentCancelled AssignmentStatus = "cancelled" // Оффер отозван оператором
)

// ActiveAssignmentStatuses статусы, при которых ассайн занимает место
// Отклоненные и отмененные ассайны место освобождают
var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentPending,
	AssignmentConfirmed,
	AssignmentCompleted,
}

// Assignment связь предложения со стаффом (оффер и его судьба)
type Assignment struct {
	ID            int64
	ReservationID int64
	StaffID       int64

	// SlotNumber номер слота для режима offer_mode=slot, nil в режиме window
	SlotNumber *int

	Status     AssignmentStatus
	AssignedAt time.Time
	ResponseAt *time.Time // Момент ответа стаффа (accept/reject)
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если ассайн занимает место
func (a *Assignment) IsActive() bool {
	return a.Status != AssignmentRejected && a.Status != AssignmentCancelled
}

// CanRespond возвращает true, если стафф еще может ответить на оффер
func (a *Assignment) CanRespond() bool {
	return a.Status == AssignmentPending
}

// AssignmentFilter фильтр для получения списка ассайнов
type AssignmentFilter struct {
	ReservationID *int64
	StaffID       *int64
	Status        *AssignmentStatus
	OnlyActive    bool // Исключить rejected/cancelled
}
