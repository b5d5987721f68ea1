package respond_assignment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	"github.com/m04kA/SMC-DispatchService/internal/service/assignments"
	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
)

const (
	msgInvalidAssignmentID = "некорректный ID ассайна"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNotFound            = "ассайн не найден"
	msgForbidden           = "доступ запрещен"
	msgInvalidState        = "ассайн не ожидает ответа"
	msgCapacityExceeded    = "вместимость предложения исчерпана"
)

// RespondBody тело запроса accept/reject
type RespondBody struct {
	StaffID int64   `json:"staffId"`
	Notes   *string `json:"notes,omitempty"`
}

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

// HandleAccept POST /api/v1/assignments/{assignmentId}/accept
func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, string(models.ActionAccept))
}

// HandleReject POST /api/v1/assignments/{assignmentId}/reject
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, string(models.ActionReject))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, action string) {
	vars := mux.Vars(r)
	assignmentIDStr := vars["assignmentId"]

	assignmentID, err := strconv.ParseInt(assignmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /assignments/{id}/%s - Invalid assignment ID: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	var body RespondBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /assignments/{id}/%s - Invalid request body: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req := &models.RespondRequest{
		StaffID: body.StaffID,
		Action:  action,
		Notes:   body.Notes,
	}

	result, err := h.service.Respond(r.Context(), assignmentID, req)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("POST /assignments/{id}/%s - Assignment not found: assignment_id=%d", action, assignmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, assignments.ErrAccessDenied):
			h.logger.Warn("POST /assignments/{id}/%s - Access denied: assignment_id=%d, staff_id=%d",
				action, assignmentID, body.StaffID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, assignments.ErrInvalidState):
			h.logger.Warn("POST /assignments/{id}/%s - Invalid state: assignment_id=%d", action, assignmentID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidState)

		case errors.Is(err, assignments.ErrCapacityExceeded):
			h.logger.Warn("POST /assignments/{id}/%s - Capacity exceeded: assignment_id=%d", action, assignmentID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("POST /assignments/{id}/%s - Invalid input: assignment_id=%d, error=%v",
				action, assignmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /assignments/{id}/%s - Failed to respond: assignment_id=%d, error=%v",
				action, assignmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments/{id}/%s - Response recorded: assignment_id=%d, staff_id=%d, status=%s",
		action, assignmentID, body.StaffID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
