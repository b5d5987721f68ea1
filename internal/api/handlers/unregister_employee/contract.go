package unregister_employee

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
)

type ReservationService interface {
	UnregisterEmployee(ctx context.Context, reservationID int64, slotNumber int) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
