package create_offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	createOffer "github.com/m04kA/SMC-DispatchService/internal/usecase/create_offer"
)

const (
	msgInvalidReservationID = "некорректный ID предложения"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgReservationNotFound  = "предложение не найдено"
	msgStaffNotFound        = "стафф не найден"
	msgStaffInactive        = "стафф не активен"
	msgNotAcceptingOffers   = "предложение не принимает офферы в текущем статусе"
	msgDuplicateAssignment  = "у стаффа уже есть активный ассайн на это предложение"
	msgSlotNotFound         = "слот не найден"
	msgSlotTaken            = "на слот уже есть активный ассайн"
	msgCapacityExceeded     = "вместимость предложения исчерпана"
	msgInvalidInput         = "некорректные параметры оффера"
)

type Handler struct {
	useCase CreateOfferUseCase
	logger  Logger
}

func NewHandler(useCase CreateOfferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/assignments - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CreateOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, createOffer.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/assignments - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, createOffer.ErrStaffNotFound):
			h.logger.Warn("POST /reservations/{id}/assignments - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createOffer.ErrStaffInactive):
			h.logger.Warn("POST /reservations/{id}/assignments - Staff inactive: staff_id=%d", req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, createOffer.ErrNotAcceptingOffers):
			h.logger.Warn("POST /reservations/{id}/assignments - Not accepting offers: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgNotAcceptingOffers)

		case errors.Is(err, createOffer.ErrDuplicateAssignment):
			h.logger.Warn("POST /reservations/{id}/assignments - Duplicate assignment: reservation_id=%d, staff_id=%d",
				reservationID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateAssignment)

		case errors.Is(err, createOffer.ErrSlotNotFound):
			h.logger.Warn("POST /reservations/{id}/assignments - Slot not found: reservation_id=%d, slot=%v",
				reservationID, req.SlotNumber)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createOffer.ErrSlotTaken):
			h.logger.Warn("POST /reservations/{id}/assignments - Slot taken: reservation_id=%d, slot=%v",
				reservationID, req.SlotNumber)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createOffer.ErrCapacityExceeded):
			h.logger.Warn("POST /reservations/{id}/assignments - Capacity exceeded: reservation_id=%d", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createOffer.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/assignments - Invalid input: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/{id}/assignments - Failed to create offer: reservation_id=%d, staff_id=%d, error=%v",
				reservationID, req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations/{id}/assignments - Offer created successfully: assignment_id=%d, reservation_id=%d, staff_id=%d",
		result.ID, reservationID, req.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
