package preview_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	previewTimeSlots "github.com/m04kA/SMC-DispatchService/internal/usecase/preview_time_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры нарезки слотов"
)

type Handler struct {
	useCase PreviewTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase PreviewTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/time-slots/preview
// Модели use case используются напрямую - расчет без состояния
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req previewTimeSlots.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /time-slots/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, previewTimeSlots.ErrInvalidInput):
			h.logger.Warn("POST /time-slots/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /time-slots/preview - Failed to preview slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-slots/preview - Preview calculated: feasible=%t, slots=%d",
		result.Feasible, result.SlotCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
