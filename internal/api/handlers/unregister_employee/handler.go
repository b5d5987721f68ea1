package unregister_employee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	"github.com/m04kA/SMC-DispatchService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID предложения"
	msgInvalidSlotNumber    = "некорректный номер слота"
	msgNotFound             = "предложение не найдено"
	msgSlotNotFound         = "слот не найден"
	msgSlotEmpty            = "слот не занят"
	msgNotEditable          = "предложение нельзя изменить в текущем статусе"
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

// Handle DELETE /api/v1/reservations/{reservationId}/slots/{slotNumber}/employee
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/slots/{slot}/employee - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	slotNumber, err := strconv.Atoi(vars["slotNumber"])
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/slots/{slot}/employee - Invalid slot number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotNumber)
		return
	}

	result, err := h.service.UnregisterEmployee(r.Context(), reservationID, slotNumber)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id}/slots/{slot}/employee - Reservation not found: reservation_id=%d",
				reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrSlotNotFound):
			h.logger.Warn("DELETE /reservations/{id}/slots/{slot}/employee - Slot not found: reservation_id=%d, slot=%d",
				reservationID, slotNumber)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reservations.ErrSlotEmpty):
			h.logger.Warn("DELETE /reservations/{id}/slots/{slot}/employee - Slot empty: reservation_id=%d, slot=%d",
				reservationID, slotNumber)
			handlers.RespondError(w, http.StatusConflict, msgSlotEmpty)

		case errors.Is(err, reservations.ErrNotEditable):
			h.logger.Warn("DELETE /reservations/{id}/slots/{slot}/employee - Not editable: reservation_id=%d",
				reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		default:
			h.logger.Error("DELETE /reservations/{id}/slots/{slot}/employee - Failed to unregister: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id}/slots/{slot}/employee - Employee unregistered: reservation_id=%d, slot=%d",
		reservationID, slotNumber)
	handlers.RespondJSON(w, http.StatusOK, result)
}
