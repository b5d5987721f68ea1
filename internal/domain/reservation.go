package domain

import (
	"time"

	"github.com/m04kA/SMC-DispatchService/pkg/types"
)

// ReservationStatus статус предложения (жизненный цикл на стороне оператора)
type ReservationStatus string

const (
	StatusRecruiting       ReservationStatus = "recruiting"        // Набор участников (начальный статус)
	StatusAssigning        ReservationStatus = "assigning"         // Идет ассайн стаффа
	StatusConfirmed        ReservationStatus = "confirmed"         // Все ассайны подтверждены
	StatusServiceCompleted ReservationStatus = "service_completed" // Выезд завершен (отчет стаффа)
	StatusEvaluated        ReservationStatus = "evaluated"         // Получена оценка от компании
	StatusClosed           ReservationStatus = "closed"            // Закрыто
	StatusCancelled        ReservationStatus = "cancelled"         // Отменено
)

// Reservation заявка компании-клиента на выездное обслуживание
// Окно [StartTime, EndTime) нарезается на слоты фиксированной длительности
// с перерывами между ними (см. internal/timeplan)
type Reservation struct {
	ID              int64
	CompanyID       int64
	OfficeName      string
	OfficeAddress   *string
	ReservationDate time.Time // Дата выезда (без времени)
	StartTime       types.TimeString
	EndTime         types.TimeString

	ApplicationDeadline *time.Time // Срок приема откликов
	MaxParticipants     int        // Заявленная вместимость (человек)

	// Поля временных слотов
	TotalDuration   int        // Длительность окна (минуты)
	ServiceDuration int        // Длительность обслуживания одного слота (минуты)
	BreakDuration   int        // Перерыв между слотами (минуты)
	SlotCount       int        // Количество слотов
	TimeSlots       []TimeSlot // Слоты (JSON-колонка)
	SlotsFilled     int        // Количество занятых сотрудниками слотов
	HourlyRate      int        // Ставка (йен/час)

	Status       ReservationStatus
	Notes        *string
	Requirements *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если предложение не отменено и не закрыто
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusClosed
}

// CanBeEdited возвращает true, если предложение еще можно редактировать
func (r *Reservation) CanBeEdited() bool {
	return r.Status == StatusRecruiting || r.Status == StatusAssigning
}

// CanBeCancelled возвращает true, если предложение можно отменить
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusRecruiting ||
		r.Status == StatusAssigning ||
		r.Status == StatusConfirmed
}

// IsFull возвращает true, если все заявленные места заняты сотрудниками
func (r *Reservation) IsFull() bool {
	return r.SlotsFilled >= r.MaxParticipants
}

// FilledSlotCount пересчитывает количество занятых слотов по слотам
// Слот считается занятым, если is_filled=true или указан сотрудник
// (исторически заполнение отслеживалось несколькими путями)
func (r *Reservation) FilledSlotCount() int {
	count := 0
	for i := range r.TimeSlots {
		if r.TimeSlots[i].IsOccupied() {
			count++
		}
	}
	return count
}

// SlotByNumber возвращает слот по номеру (1-based) или nil
func (r *Reservation) SlotByNumber(slotNumber int) *TimeSlot {
	if slotNumber < 1 || slotNumber > len(r.TimeSlots) {
		return nil
	}
	return &r.TimeSlots[slotNumber-1]
}

// ReservationFilter фильтр для получения списка предложений
type ReservationFilter struct {
	CompanyID *int64             // Фильтр по компании (опционально)
	Status    *ReservationStatus // Фильтр по статусу (опционально)
	Limit     int                // Максимум записей (0 = значение по умолчанию)
	Offset    int                // Смещение
}
