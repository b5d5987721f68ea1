package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	"github.com/m04kA/SMC-DispatchService/pkg/types"
)

// Request модель запроса на обновление предложения
// Все поля кроме ReservationID передаются целиком (PUT-семантика)
type Request struct {
	ReservationID       int64
	OfficeName          string
	OfficeAddress       *string
	ReservationDate     time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	ApplicationDeadline *time.Time
	MaxParticipants     int
	ServiceDuration     int
	BreakDuration       int
	HourlyRate          int
	Notes               *string
	Requirements        *string
}

// Response модель ответа с обновленным предложением
type Response struct {
	ID              int64
	CompanyID       int64
	OfficeName      string
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxParticipants int
	TotalDuration   int
	ServiceDuration int
	BreakDuration   int
	SlotCount       int
	TimeSlots       []domain.TimeSlot
	SlotsFilled     int
	HourlyRate      int
	Status          string
	Replanned       bool // Слоты пересчитаны из-за изменения окна или длительностей

	CreatedAt time.Time
	UpdatedAt time.Time
}
