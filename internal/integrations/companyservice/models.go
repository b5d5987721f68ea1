package companyservice

// Company модель компании-клиента из CompanyService
type Company struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	ContractPlan      string  `json:"contract_plan"` // "6_months" или "12_months"
	ContractStartDate string  `json:"contract_start_date"`
	ContractEndDate   string  `json:"contract_end_date"`
	BillingStartDate  *string `json:"billing_start_date,omitempty"`
	IsActive          bool    `json:"is_active"`
}

// Employee модель сотрудника компании из CompanyService
type Employee struct {
	ID         int64   `json:"id"`
	CompanyID  int64   `json:"company_id"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// RenewContractRequest запрос на продление контракта
type RenewContractRequest struct {
	Plan             string `json:"plan"`
	StartDate        string `json:"start_date"`
	BillingStartDate string `json:"billing_start_date"`
	EndDate          string `json:"end_date"`
}

// ErrorResponse модель ошибки от CompanyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
