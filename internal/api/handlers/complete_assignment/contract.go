package complete_assignment

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
)

type AssignmentService interface {
	Complete(ctx context.Context, assignmentID int64) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
