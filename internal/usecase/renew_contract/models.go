package renew_contract

// Request модель запроса на продление контракта
type Request struct {
	CompanyID int64
	Plan      string // "6_months" или "12_months"

	// DryRun только рассчитывает даты, без сохранения в CompanyService
	DryRun bool
}

// Response модель ответа с датами продления
type Response struct {
	CompanyID        int64
	Plan             string
	StartDate        string // Начало нового срока (YYYY-MM-DD)
	BillingStartDate string // Начало оплачиваемого периода
	EndDate          string // Конец нового срока
	Applied          bool   // false для dry-run
}
