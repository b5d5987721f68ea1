package renew_contract

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (f fixedTimeProvider) Now() time.Time { return f.now }

type fakeCompanyClient struct {
	company  *companyservice.Company
	getErr   error
	renewErr error
	renewed  *companyservice.RenewContractRequest
}

func (f *fakeCompanyClient) GetCompany(_ context.Context, _ int64) (*companyservice.Company, error) {
	return f.company, f.getErr
}

func (f *fakeCompanyClient) RenewContract(_ context.Context, _ int64, req companyservice.RenewContractRequest) (*companyservice.Company, error) {
	if f.renewErr != nil {
		return nil, f.renewErr
	}
	f.renewed = &req
	return f.company, nil
}

func newUseCaseAt(client *fakeCompanyClient, now time.Time) *UseCase {
	uc := NewUseCase(client, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func TestExecute_SixMonths(t *testing.T) {
	client := &fakeCompanyClient{company: &companyservice.Company{
		ID:              10,
		ContractEndDate: "2026-03-15",
		IsActive:        true,
	}}
	uc := newUseCaseAt(client, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "6_months"})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", resp.StartDate)
	assert.Equal(t, "2026-04-01", resp.BillingStartDate)
	assert.Equal(t, "2026-09-30", resp.EndDate)
	assert.True(t, resp.Applied)

	require.NotNil(t, client.renewed)
	assert.Equal(t, "6_months", client.renewed.Plan)
	assert.Equal(t, "2026-09-30", client.renewed.EndDate)
}

func TestExecute_TwelveMonthsYearBoundary(t *testing.T) {
	client := &fakeCompanyClient{company: &companyservice.Company{
		ID:              10,
		ContractEndDate: "2026-12-31",
	}}
	uc := newUseCaseAt(client, time.Date(2026, 12, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "12_months"})

	require.NoError(t, err)
	assert.Equal(t, "2027-01-01", resp.StartDate)
	assert.Equal(t, "2027-02-01", resp.BillingStartDate)
	assert.Equal(t, "2028-01-31", resp.EndDate)
}

func TestExecute_RenewOnLastDay(t *testing.T) {
	client := &fakeCompanyClient{company: &companyservice.Company{
		ID:              10,
		ContractEndDate: "2026-03-15",
	}}
	// Продление в день окончания контракта еще допустимо
	uc := newUseCaseAt(client, time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "6_months"})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-16", resp.StartDate)
}

func TestExecute_DryRun(t *testing.T) {
	client := &fakeCompanyClient{company: &companyservice.Company{
		ID:              10,
		ContractEndDate: "2026-03-15",
	}}
	uc := newUseCaseAt(client, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "6_months", DryRun: true})

	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Equal(t, "2026-09-30", resp.EndDate)
	// Расчет без сохранения
	assert.Nil(t, client.renewed)
}

func TestExecute_ContractExpired(t *testing.T) {
	client := &fakeCompanyClient{company: &companyservice.Company{
		ID:              10,
		ContractEndDate: "2026-03-15",
	}}
	uc := newUseCaseAt(client, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "6_months"})

	assert.ErrorIs(t, err, ErrContractExpired)
	assert.Nil(t, client.renewed)
}

func TestExecute_InvalidPlan(t *testing.T) {
	uc := newUseCaseAt(&fakeCompanyClient{}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "3_months"})

	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestExecute_CompanyNotFound(t *testing.T) {
	client := &fakeCompanyClient{getErr: companyservice.ErrCompanyNotFound}
	uc := newUseCaseAt(client, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "6_months"})

	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestExecute_NoContract(t *testing.T) {
	client := &fakeCompanyClient{company: &companyservice.Company{ID: 10}}
	uc := newUseCaseAt(client, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{CompanyID: 10, Plan: "6_months"})

	assert.ErrorIs(t, err, ErrNoContract)
}
