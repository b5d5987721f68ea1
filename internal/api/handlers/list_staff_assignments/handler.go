package list_staff_assignments

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
	msgInvalidStaffID = "некорректный ID стаффа"
	msgInvalidParams  = "некорректные параметры запроса"
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

// Handle GET /api/v1/staff/{staffId}/assignments
// Query params: status, onlyActive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffIDStr := vars["staffId"]

	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/assignments - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	req := &models.ListByStaffRequest{StaffID: staffID}

	query := r.URL.Query()
	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}
	if onlyActiveStr := query.Get("onlyActive"); onlyActiveStr != "" {
		onlyActive, err := strconv.ParseBool(onlyActiveStr)
		if err != nil {
			h.logger.Warn("GET /staff/{id}/assignments - Invalid onlyActive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.OnlyActive = onlyActive
	}

	result, err := h.service.ListByStaff(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/assignments - Invalid parameters: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /staff/{id}/assignments - Failed to list assignments: staff_id=%d, error=%v",
				staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id}/assignments - Assignments retrieved successfully: staff_id=%d, count=%d",
		staffID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
