package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	"github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
	"github.com/m04kA/SMC-DispatchService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	created *domain.Reservation
	err     error
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	res.ID = 1
	res.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	res.UpdatedAt = res.CreatedAt
	f.created = res
	return res, nil
}

type fakeCompanyClient struct {
	company *companyservice.Company
	err     error
}

func (f *fakeCompanyClient) GetCompany(_ context.Context, _ int64) (*companyservice.Company, error) {
	return f.company, f.err
}

type fixedTimeProvider struct{ now time.Time }

func (f fixedTimeProvider) Now() time.Time { return f.now }

func validRequest() *Request {
	return &Request{
		CompanyID:       10,
		OfficeName:      "Shibuya HQ",
		ReservationDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "18:00",
		MaxParticipants: 12,
		ServiceDuration: 30,
		BreakDuration:   10,
		HourlyRate:      1500,
	}
}

func newUseCase(repo *fakeReservationRepo, client *fakeCompanyClient) *UseCase {
	uc := NewUseCase(repo, client, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeCompanyClient{company: &companyservice.Company{ID: 10, IsActive: true}}

	resp, err := newUseCase(repo, client).Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 12, resp.SlotCount)
	assert.Equal(t, 480, resp.TotalDuration)
	assert.Equal(t, string(domain.StatusRecruiting), resp.Status)
	// 12 слотов по 30 минут по ставке 1500: floor(30*1500/60)=750 за слот
	assert.Equal(t, 9000, resp.TotalEarnings)

	require.NotNil(t, repo.created)
	assert.Len(t, repo.created.TimeSlots, 12)
	assert.Equal(t, 0, repo.created.SlotsFilled)
}

func TestExecute_CappedByParticipants(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeCompanyClient{company: &companyservice.Company{ID: 10, IsActive: true}}

	req := validRequest()
	req.MaxParticipants = 3

	resp, err := newUseCase(repo, client).Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.SlotCount)
	assert.Len(t, resp.TimeSlots, 3)
}

func TestExecute_CompanyNotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeCompanyClient{err: companyservice.ErrCompanyNotFound}

	_, err := newUseCase(repo, client).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Nil(t, repo.created)
}

func TestExecute_CompanyInactive(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeCompanyClient{company: &companyservice.Company{ID: 10, IsActive: false}}

	_, err := newUseCase(repo, client).Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCompanyInactive)
}

func TestExecute_DateInPast(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeCompanyClient{company: &companyservice.Company{ID: 10, IsActive: true}}

	req := validRequest()
	req.ReservationDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	_, err := newUseCase(repo, client).Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_WindowTooShort(t *testing.T) {
	repo := &fakeReservationRepo{}
	client := &fakeCompanyClient{company: &companyservice.Company{ID: 10, IsActive: true}}

	req := validRequest()
	req.StartTime = "10:00"
	req.EndTime = "10:20"

	_, err := newUseCase(repo, client).Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrWindowTooShort)
	assert.Nil(t, repo.created)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing office name", func(r *Request) { r.OfficeName = "" }},
		{"zero company", func(r *Request) { r.CompanyID = 0 }},
		{"bad start time", func(r *Request) { r.StartTime = "1000" }},
		{"zero participants", func(r *Request) { r.MaxParticipants = 0 }},
		{"service too short", func(r *Request) { r.ServiceDuration = 1 }},
		{"negative break", func(r *Request) { r.BreakDuration = -5 }},
		{"zero rate", func(r *Request) { r.HourlyRate = 0 }},
		{"notes too long", func(r *Request) {
			long := make([]byte, domain.MaxNotesLength+1)
			r.Notes = ptr.Ptr(string(long))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{}
			client := &fakeCompanyClient{company: &companyservice.Company{ID: 10, IsActive: true}}

			req := validRequest()
			tt.mutate(req)

			_, err := newUseCase(repo, client).Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
