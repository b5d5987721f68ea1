package complete_assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	"github.com/m04kA/SMC-DispatchService/internal/service/assignments"
)

const (
	msgInvalidAssignmentID = "некорректный ID ассайна"
	msgNotFound            = "ассайн не найден"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments/{assignmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	assignmentIDStr := vars["assignmentId"]

	assignmentID, err := strconv.ParseInt(assignmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /assignments/{id}/complete - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	result, err := h.service.Complete(r.Context(), assignmentID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("POST /assignments/{id}/complete - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /assignments/{id}/complete - Failed to complete: assignment_id=%d, error=%v",
				assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments/{id}/complete - Assignment completed: assignment_id=%d", assignmentID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
