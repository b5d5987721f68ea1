package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	createReservation "github.com/m04kA/SMC-DispatchService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-DispatchService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	CompanyID           int64   `json:"companyId"`
	OfficeName          string  `json:"officeName"`
	OfficeAddress       *string `json:"officeAddress,omitempty"`
	ReservationDate     string  `json:"reservationDate"` // "2026-10-01"
	StartTime           string  `json:"startTime"`       // "10:00"
	EndTime             string  `json:"endTime"`         // "18:00"
	ApplicationDeadline *string `json:"applicationDeadline,omitempty"` // RFC3339
	MaxParticipants     int     `json:"maxParticipants"`
	ServiceDuration     int     `json:"serviceDuration"`
	BreakDuration       int     `json:"breakDuration"`
	HourlyRate          int     `json:"hourlyRate"`
	Notes               *string `json:"notes,omitempty"`
	Requirements        *string `json:"requirements,omitempty"`
}

// TimeSlotResponse слот в HTTP ответе
type TimeSlotResponse struct {
	Slot      int    `json:"slot"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
	IsFilled  bool   `json:"isFilled"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64              `json:"id"`
	CompanyID       int64              `json:"companyId"`
	OfficeName      string             `json:"officeName"`
	ReservationDate string             `json:"reservationDate"`
	StartTime       string             `json:"startTime"`
	EndTime         string             `json:"endTime"`
	MaxParticipants int                `json:"maxParticipants"`
	TotalDuration   int                `json:"totalDuration"`
	ServiceDuration int                `json:"serviceDuration"`
	BreakDuration   int                `json:"breakDuration"`
	SlotCount       int                `json:"slotCount"`
	TimeSlots       []TimeSlotResponse `json:"timeSlots"`
	HourlyRate      int                `json:"hourlyRate"`
	TotalEarnings   int                `json:"totalEarnings"`
	Status          string             `json:"status"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	var deadline *time.Time
	if r.ApplicationDeadline != nil {
		parsed, err := time.Parse(time.RFC3339, *r.ApplicationDeadline)
		if err != nil {
			return nil, err
		}
		deadline = &parsed
	}

	return &createReservation.Request{
		CompanyID:           r.CompanyID,
		OfficeName:          r.OfficeName,
		OfficeAddress:       r.OfficeAddress,
		ReservationDate:     reservationDate,
		StartTime:           startTime,
		EndTime:             endTime,
		ApplicationDeadline: deadline,
		MaxParticipants:     r.MaxParticipants,
		ServiceDuration:     r.ServiceDuration,
		BreakDuration:       r.BreakDuration,
		HourlyRate:          r.HourlyRate,
		Notes:               r.Notes,
		Requirements:        r.Requirements,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	slots := make([]TimeSlotResponse, 0, len(resp.TimeSlots))
	for _, slot := range resp.TimeSlots {
		slots = append(slots, TimeSlotResponse{
			Slot:      slot.Slot,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Duration:  slot.Duration,
			IsFilled:  slot.IsFilled,
		})
	}

	return &ReservationResponse{
		ID:              resp.ID,
		CompanyID:       resp.CompanyID,
		OfficeName:      resp.OfficeName,
		ReservationDate: resp.ReservationDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		MaxParticipants: resp.MaxParticipants,
		TotalDuration:   resp.TotalDuration,
		ServiceDuration: resp.ServiceDuration,
		BreakDuration:   resp.BreakDuration,
		SlotCount:       resp.SlotCount,
		TimeSlots:       slots,
		HourlyRate:      resp.HourlyRate,
		TotalEarnings:   resp.TotalEarnings,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
