package list_reservation_assignments

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
)

type AssignmentService interface {
	ListByReservation(ctx context.Context, reservationID int64) (*models.AssignmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
