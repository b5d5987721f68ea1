package list_staff_assignments

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
)

type AssignmentService interface {
	ListByStaff(ctx context.Context, req *models.ListByStaffRequest) (*models.AssignmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
