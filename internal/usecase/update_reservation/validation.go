package update_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
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

// needsReplan проверяет, затронули ли изменения параметры нарезки слотов
func needsReplan(res *domain.Reservation, req *Request) bool {
	return res.StartTime != req.StartTime ||
		res.EndTime != req.EndTime ||
		res.ServiceDuration != req.ServiceDuration ||
		res.BreakDuration != req.BreakDuration ||
		res.MaxParticipants != req.MaxParticipants
}
