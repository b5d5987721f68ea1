package renew_contract

import renewContract "github.com/m04kA/SMC-DispatchService/internal/usecase/renew_contract"

// RenewContractRequest HTTP request model
type RenewContractRequest struct {
	Plan   string `json:"plan"` // "6_months" или "12_months"
	DryRun bool   `json:"dryRun,omitempty"`
}

// RenewContractResponse HTTP response model
type RenewContractResponse struct {
	CompanyID        int64  `json:"companyId"`
	Plan             string `json:"plan"`
	StartDate        string `json:"startDate"`
	BillingStartDate string `json:"billingStartDate"`
	EndDate          string `json:"endDate"`
	Applied          bool   `json:"applied"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RenewContractRequest) ToUseCaseRequest(companyID int64) *renewContract.Request {
	return &renewContract.Request{
		CompanyID: companyID,
		Plan:      r.Plan,
		DryRun:    r.DryRun,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *renewContract.Response) *RenewContractResponse {
	return &RenewContractResponse{
		CompanyID:        resp.CompanyID,
		Plan:             resp.Plan,
		StartDate:        resp.StartDate,
		BillingStartDate: resp.BillingStartDate,
		EndDate:          resp.EndDate,
		Applied:          resp.Applied,
	}
}
