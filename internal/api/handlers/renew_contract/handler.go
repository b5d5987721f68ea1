package renew_contract

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DispatchService/internal/api/handlers"
	renewContract "github.com/m04kA/SMC-DispatchService/internal/usecase/renew_contract"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCompanyNotFound    = "компания не найдена"
	msgInvalidPlan        = "план должен быть 6_months или 12_months"
	msgNoContract         = "у компании нет контракта для продления"
	msgContractExpired    = "контракт уже истек и не может быть продлен"
)

type Handler struct {
	useCase RenewContractUseCase
	logger  Logger
}

func NewHandler(useCase RenewContractUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/companies/{companyId}/contract/renew
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	companyIDStr := vars["companyId"]

	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /companies/{id}/contract/renew - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	var req RenewContractRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/contract/renew - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(companyID))
	if err != nil {
		switch {
		case errors.Is(err, renewContract.ErrCompanyNotFound):
			h.logger.Warn("POST /companies/{id}/contract/renew - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, renewContract.ErrInvalidPlan):
			h.logger.Warn("POST /companies/{id}/contract/renew - Invalid plan: company_id=%d, plan=%s",
				companyID, req.Plan)
			handlers.RespondBadRequest(w, msgInvalidPlan)

		case errors.Is(err, renewContract.ErrNoContract):
			h.logger.Warn("POST /companies/{id}/contract/renew - No contract: company_id=%d", companyID)
			handlers.RespondError(w, http.StatusConflict, msgNoContract)

		case errors.Is(err, renewContract.ErrContractExpired):
			h.logger.Warn("POST /companies/{id}/contract/renew - Contract expired: company_id=%d", companyID)
			handlers.RespondError(w, http.StatusConflict, msgContractExpired)

		case errors.Is(err, renewContract.ErrInvalidInput):
			h.logger.Warn("POST /companies/{id}/contract/renew - Invalid input: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /companies/{id}/contract/renew - Failed to renew contract: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /companies/{id}/contract/renew - Contract renewal calculated: company_id=%d, plan=%s, applied=%t",
		companyID, req.Plan, result.Applied)
	handlers.RespondJSON(w, http.StatusOK, response)
}
