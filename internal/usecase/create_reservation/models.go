package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	"github.com/m04kA/SMC-DispatchService/pkg/types"
)

// Request модель запроса на создание предложения
type Request struct {
	CompanyID           int64            // ID компании-клиента
	OfficeName          string           // Название офиса
	OfficeAddress       *string          // Адрес офиса (опционально)
	ReservationDate     time.Time        // Дата выезда (без времени)
	StartTime           types.TimeString // Начало окна (например, "10:00")
	EndTime             types.TimeString // Конец окна
	ApplicationDeadline *time.Time       // Срок приема откликов (опционально)
	MaxParticipants     int              // Заявленная вместимость
	ServiceDuration     int              // Длительность обслуживания одного слота (минуты)
	BreakDuration       int              // Перерыв между слотами (минуты)
	HourlyRate          int              // Ставка (йен/час)
	Notes               *string          // Заметки (опционально)
	Requirements        *string          // Требования к стаффу (опционально)
}

// Response модель ответа с созданным предложением
type Response struct {
	ID              int64
	CompanyID       int64
	OfficeName      string
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxParticipants int
	TotalDuration   int // Длительность окна (минуты)
	ServiceDuration int
	BreakDuration   int
	SlotCount       int
	TimeSlots       []domain.TimeSlot
	HourlyRate      int
	TotalEarnings   int // Суммарный заработок стаффа за все слоты
	Status          string

	CreatedAt time.Time
	UpdatedAt time.Time
}
