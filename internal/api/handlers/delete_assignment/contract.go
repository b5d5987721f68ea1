package delete_assignment

import "context"

type AssignmentService interface {
	Delete(ctx context.Context, assignmentID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
