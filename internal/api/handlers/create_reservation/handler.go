package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-DispatchService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgCompanyNotFound    = "компания не найдена"
	msgCompanyInactive    = "контракт компании не активен"
	msgWindowTooShort     = "окно слишком короткое даже для одного слота"
	msgDateInPast         = "дата выезда уже прошла"
	msgInvalidInput       = "некорректные параметры предложения"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrCompanyNotFound):
			h.logger.Warn("POST /reservations - Company not found: company_id=%d", req.CompanyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, createReservation.ErrCompanyInactive):
			h.logger.Warn("POST /reservations - Company inactive: company_id=%d", req.CompanyID)
			handlers.RespondError(w, http.StatusConflict, msgCompanyInactive)

		case errors.Is(err, createReservation.ErrWindowTooShort):
			h.logger.Warn("POST /reservations - Window too short: company_id=%d, window=%s-%s",
				req.CompanyID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgWindowTooShort)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in past: company_id=%d, date=%s", req.CompanyID, req.ReservationDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: company_id=%d, error=%v", req.CompanyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: company_id=%d, error=%v",
				req.CompanyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, company_id=%d, slots=%d",
		result.ID, req.CompanyID, result.SlotCount)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
