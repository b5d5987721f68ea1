package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.OfficeName == "" {
		return fmt.Errorf("%w: officeName is required", ErrInvalidInput)
	}

	if req.ReservationDate.IsZero() {
		return fmt.Errorf("%w: reservationDate is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.MaxParticipants < domain.MinMaxParticipants || req.MaxParticipants > domain.MaxMaxParticipants {
		return fmt.Errorf("%w: maxParticipants must be between %d and %d",
			ErrInvalidInput, domain.MinMaxParticipants, domain.MaxMaxParticipants)
	}

	if req.ServiceDuration < domain.MinServiceDuration || req.ServiceDuration > domain.MaxServiceDuration {
		return fmt.Errorf("%w: serviceDuration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDuration, domain.MaxServiceDuration)
	}

	if req.BreakDuration < domain.MinBreakDuration || req.BreakDuration > domain.MaxBreakDuration {
		return fmt.Errorf("%w: breakDuration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBreakDuration, domain.MaxBreakDuration)
	}

	if req.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourlyRate must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes is too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата выезда не в прошлом
func validateDate(reservationDate, now time.Time) error {
	dateOnly := time.Date(reservationDate.Year(), reservationDate.Month(), reservationDate.Day(), 0, 0, 0, 0, reservationDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
