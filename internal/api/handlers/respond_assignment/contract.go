package respond_assignment

import (
	"context"

	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
)

type AssignmentService interface {
	Respond(ctx context.Context, assignmentID int64, req *models.RespondRequest) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
