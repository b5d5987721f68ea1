package get_capacity

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
)

type ReservationService interface {
	GetCapacity(ctx context.Context, id int64) (*models.CapacityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
