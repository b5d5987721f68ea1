package preview_time_slots

import (
	"context"

	previewTimeSlots "github.com/m04kA/SMC-DispatchService/internal/usecase/preview_time_slots"
)

type PreviewTimeSlotsUseCase interface {
	Execute(ctx context.Context, req *previewTimeSlots.Request) (*previewTimeSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
