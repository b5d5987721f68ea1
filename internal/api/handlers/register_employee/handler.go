package register_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	"github.com/m04kA/SMC-DispatchService/internal/service/reservations"
	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID предложения"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "предложение не найдено"
	msgSlotNotFound         = "слот не найден"
	msgSlotAlreadyFilled    = "слот уже занят"
	msgReservationFull      = "свободных слотов не осталось"
	msgEmployeeNotFound     = "сотрудник не найден"
	msgNotEditable          = "предложение нельзя изменить в текущем статусе"
	msgInvalidInput         = "некорректные параметры регистрации"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/employees
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/employees - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req models.RegisterEmployeeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/employees - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.RegisterEmployee(r.Context(), reservationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/employees - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrSlotNotFound):
			h.logger.Warn("POST /reservations/{id}/employees - Slot not found: reservation_id=%d, slot=%v",
				reservationID, req.SlotNumber)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reservations.ErrSlotAlreadyFilled):
			h.logger.Warn("POST /reservations/{id}/employees - Slot already filled: reservation_id=%d, slot=%v",
				reservationID, req.SlotNumber)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyFilled)

		case errors.Is(err, reservations.ErrReservationFull):
			h.logger.Warn("POST /reservations/{id}/employees - No free slots: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgReservationFull)

		case errors.Is(err, reservations.ErrEmployeeNotFound):
			h.logger.Warn("POST /reservations/{id}/employees - Employee not found: reservation_id=%d, employee_id=%d",
				reservationID, req.EmployeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, reservations.ErrNotEditable):
			h.logger.Warn("POST /reservations/{id}/employees - Not editable: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/employees - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/employees - Failed to register employee: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/employees - Employee registered successfully: reservation_id=%d, employee_id=%d",
		reservationID, req.EmployeeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
