package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/capacity"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение списка предложений
type ListReservationsRequest struct {
	CompanyID *int64  `json:"companyId,omitempty"` // Фильтр по компании (опционально)
	Status    *string `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	Limit     int     `json:"limit,omitempty"`
	Offset    int     `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		CompanyID: r.CompanyID,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// RegisterEmployeeRequest запрос на регистрацию сотрудника в слот
// SlotNumber опционален - без него берется первый свободный слот
// Поля сотрудника используются как fallback при недоступности CompanyService
type RegisterEmployeeRequest struct {
	EmployeeID         int64   `json:"employeeId"`
	SlotNumber         *int    `json:"slotNumber,omitempty"`
	EmployeeName       *string `json:"employeeName,omitempty"`
	EmployeeDepartment *string `json:"employeeDepartment,omitempty"`
	EmployeePosition   *string `json:"employeePosition,omitempty"`
}

// Response модели

// TimeSlotResponse слот в ответе API
type TimeSlotResponse struct {
	Slot               int     `json:"slot"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Duration           int     `json:"duration"`
	IsFilled           bool    `json:"isFilled"`
	EmployeeID         *int64  `json:"employeeId,omitempty"`
	EmployeeName       *string `json:"employeeName,omitempty"`
	EmployeeDepartment *string `json:"employeeDepartment,omitempty"`
	EmployeePosition   *string `json:"employeePosition,omitempty"`
	StaffID            *int64  `json:"staffId,omitempty"`
}

// ReservationResponse предложение в ответе API
type ReservationResponse struct {
	ID                  int64              `json:"id"`
	CompanyID           int64              `json:"companyId"`
	OfficeName          string             `json:"officeName"`
	OfficeAddress       *string            `json:"officeAddress,omitempty"`
	ReservationDate     string             `json:"reservationDate"`
	StartTime           string             `json:"startTime"`
	EndTime             string             `json:"endTime"`
	ApplicationDeadline *string            `json:"applicationDeadline,omitempty"`
	MaxParticipants     int                `json:"maxParticipants"`
	TotalDuration       int                `json:"totalDuration"`
	ServiceDuration     int                `json:"serviceDuration"`
	BreakDuration       int                `json:"breakDuration"`
	SlotCount           int                `json:"slotCount"`
	TimeSlots           []TimeSlotResponse `json:"timeSlots"`
	SlotsFilled         int                `json:"slotsFilled"`
	HourlyRate          int                `json:"hourlyRate"`
	Status              string             `json:"status"`
	Notes               *string            `json:"notes,omitempty"`
	Requirements        *string            `json:"requirements,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

// ReservationListResponse список предложений
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// CapacityResponse сводка занятости предложения
type CapacityResponse struct {
	ReservationID       int64 `json:"reservationId"`
	TotalSlots          int   `json:"totalSlots"`
	EmployeeFilledCount int   `json:"employeeFilledCount"`
	PendingCount        int   `json:"pendingCount"`
	ConfirmedCount      int   `json:"confirmedCount"`
	CompletedCount      int   `json:"completedCount"`
	AvailableSlots      int   `json:"availableSlots"`
	IsOverCapacity      bool  `json:"isOverCapacity"`
}

// Конвертеры domain <-> API моделей

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	switch domain.ReservationStatus(status) {
	case domain.StatusRecruiting,
		domain.StatusAssigning,
		domain.StatusConfirmed,
		domain.StatusServiceCompleted,
		domain.StatusEvaluated,
		domain.StatusClosed,
		domain.StatusCancelled:
		return domain.ReservationStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainTimeSlot конвертирует domain слот в API модель
func FromDomainTimeSlot(slot *domain.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		Slot:               slot.Slot,
		StartTime:          slot.StartTime.String(),
		EndTime:            slot.EndTime.String(),
		Duration:           slot.Duration,
		IsFilled:           slot.IsFilled,
		EmployeeID:         slot.EmployeeID,
		EmployeeName:       slot.EmployeeName,
		EmployeeDepartment: slot.EmployeeDepartment,
		EmployeePosition:   slot.EmployeePosition,
		StaffID:            slot.StaffID,
	}
}

// FromDomainReservation конвертирует domain предложение в API модель
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	slots := make([]TimeSlotResponse, 0, len(res.TimeSlots))
	for i := range res.TimeSlots {
		slots = append(slots, FromDomainTimeSlot(&res.TimeSlots[i]))
	}

	var deadline *string
	if res.ApplicationDeadline != nil {
		d := res.ApplicationDeadline.Format(domain.DateFormat)
		deadline = &d
	}

	return &ReservationResponse{
		ID:                  res.ID,
		CompanyID:           res.CompanyID,
		OfficeName:          res.OfficeName,
		OfficeAddress:       res.OfficeAddress,
		ReservationDate:     res.ReservationDate.Format(domain.DateFormat),
		StartTime:           res.StartTime.String(),
		EndTime:             res.EndTime.String(),
		ApplicationDeadline: deadline,
		MaxParticipants:     res.MaxParticipants,
		TotalDuration:       res.TotalDuration,
		ServiceDuration:     res.ServiceDuration,
		BreakDuration:       res.BreakDuration,
		SlotCount:           res.SlotCount,
		TimeSlots:           slots,
		SlotsFilled:         res.SlotsFilled,
		HourlyRate:          res.HourlyRate,
		Status:              string(res.Status),
		Notes:               res.Notes,
		Requirements:        res.Requirements,
		CreatedAt:           res.CreatedAt,
		UpdatedAt:           res.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список предложений в API модель
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]*ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		result = append(result, FromDomainReservation(res))
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}

// FromCapacitySummary конвертирует сводку занятости в API модель
func FromCapacitySummary(reservationID int64, s capacity.Summary) *CapacityResponse {
	return &CapacityResponse{
		ReservationID:       reservationID,
		TotalSlots:          s.TotalSlots,
		EmployeeFilledCount: s.EmployeeFilledCount,
		PendingCount:        s.PendingCount,
		ConfirmedCount:      s.ConfirmedCount,
		CompletedCount:      s.CompletedCount,
		AvailableSlots:      s.AvailableSlots,
		IsOverCapacity:      s.IsOverCapacity,
	}
}
