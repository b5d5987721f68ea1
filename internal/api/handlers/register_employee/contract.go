package register_employee

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
)

type ReservationService interface {
	RegisterEmployee(ctx context.Context, reservationID int64, req *models.RegisterEmployeeRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
