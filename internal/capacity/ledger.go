package capacity

import "github.com/m04kA/SMC-DispatchService/internal/domain"

// Summary сводка занятости предложения
// Собирается на лету из слотов и ассайнов, в базе не хранится
type Summary struct {
	TotalSlots int // Емкость: max(слоты, заявленная вместимость, 1)

	EmployeeFilledCount int // Слоты, занятые сотрудниками компании
	PendingCount        int // Офферы без ответа
	ConfirmedCount      int // Принятые офферы
	CompletedCount      int // Отработанные ассайны

	AvailableSlots int // Свободные места (не меньше нуля)

	// IsOverCapacity суммарная занятость превышает заявленную вместимость
	// Это предупреждение для оператора, а не блокировка операций
	IsOverCapacity bool
}

// Occupied суммарное количество занятых мест (сотрудники + активные ассайны)
func (s Summary) Occupied() int {
	return s.EmployeeFilledCount + s.PendingCount + s.ConfirmedCount + s.CompletedCount
}

// Summarize собирает сводку занятости по предложению и его ассайнам
// Отклоненные и отмененные ассайны места не занимают
func Summarize(reservation *domain.Reservation, assignments []domain.Assignment) Summary {
	total := reservation.SlotCount
	if reservation.MaxParticipants > total {
		total = reservation.MaxParticipants
	}
	if total < 1 {
		total = 1
	}

	s := Summary{
		TotalSlots:          total,
		EmployeeFilledCount: reservation.FilledSlotCount(),
	}

	for i := range assignments {
		switch assignments[i].Status {
		case domain.AssignmentPending:
			s.PendingCount++
		case domain.AssignmentConfirmed:
			s.ConfirmedCount++
		case domain.AssignmentCompleted:
			s.CompletedCount++
		}
	}

	s.AvailableSlots = total - (s.PendingCount + s.ConfirmedCount + s.CompletedCount)
	if s.AvailableSlots < 0 {
		s.AvailableSlots = 0
	}

	s.IsOverCapacity = s.EmployeeFilledCount+s.ConfirmedCount+s.CompletedCount > reservation.MaxParticipants

	return s
}
