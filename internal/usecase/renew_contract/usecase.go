package renew_contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/contract"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
	companyClient "github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
)

// UseCase use case для продления контракта компании
//
// Расчет дат: новый срок начинается на следующий день после окончания
// текущего контракта, оплата - с первого числа следующего месяца,
// длительность оплачиваемого периода определяется тарифным планом
type UseCase struct {
	companyClient CompanyServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(companyClient CompanyServiceClient, logger Logger) *UseCase {
	return &UseCase{
		companyClient: companyClient,
		timeProvider:  RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case продления контракта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RenewContract: company=%d plan=%s dryRun=%t", req.CompanyID, req.Plan, req.DryRun)

	// 1. Валидация входных данных
	if req.CompanyID <= 0 {
		return nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	plan := contract.Plan(req.Plan)
	if _, err := plan.Months(); err != nil {
		uc.logger.Warn("RenewContract: unknown plan %q", req.Plan)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlan, req.Plan)
	}

	// 2. Получаем компанию с текущим контрактом
	company, err := uc.companyClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			uc.logger.Warn("RenewContract: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("RenewContract: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	if company.ContractEndDate == "" {
		uc.logger.Warn("RenewContract: company id=%d has no contract end date", req.CompanyID)
		return nil, ErrNoContract
	}

	currentEnd, err := time.Parse(domain.DateFormat, company.ContractEndDate)
	if err != nil {
		uc.logger.Error("RenewContract: malformed contract end date %q for company id=%d", company.ContractEndDate, req.CompanyID)
		return nil, fmt.Errorf("%w: malformed contract end date: %v", ErrInternal, err)
	}

	// 3. Продлевать можно только действующий контракт: дата окончания
	// должна быть не раньше сегодняшнего дня
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if currentEnd.Before(today) {
		uc.logger.Warn("RenewContract: contract for company id=%d expired at %s", req.CompanyID, company.ContractEndDate)
		return nil, ErrContractExpired
	}

	// 4. Считаем даты продления
	term, err := contract.Renew(currentEnd, plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	resp := &Response{
		CompanyID:        req.CompanyID,
		Plan:             req.Plan,
		StartDate:        term.StartDate.Format(domain.DateFormat),
		BillingStartDate: term.BillingStartDate.Format(domain.DateFormat),
		EndDate:          term.EndDate.Format(domain.DateFormat),
	}

	// 5. Для dry-run только возвращаем расчет
	if req.DryRun {
		uc.logger.Info("RenewContract: dry-run for company=%d: %s - %s", req.CompanyID, resp.StartDate, resp.EndDate)
		return resp, nil
	}

	// 6. Сохраняем продление в CompanyService
	if _, err := uc.companyClient.RenewContract(ctx, req.CompanyID, companyClient.RenewContractRequest{
		Plan:             req.Plan,
		StartDate:        resp.StartDate,
		BillingStartDate: resp.BillingStartDate,
		EndDate:          resp.EndDate,
	}); err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("RenewContract: failed to apply renewal for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to apply renewal: %v", ErrInternal, err)
	}

	resp.Applied = true
	uc.logger.Info("RenewContract: renewed company=%d until %s", req.CompanyID, resp.EndDate)

	return resp, nil
}
