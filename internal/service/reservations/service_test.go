package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
	"github.com/m04kA/SMC-DispatchService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	reservation  *domain.Reservation
	savedSlots   []domain.TimeSlot
	savedFilled  int
	slotsUpdated bool
	deleted      []int64
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	if f.reservation == nil {
		return []*domain.Reservation{}, nil
	}
	return []*domain.Reservation{f.reservation}, nil
}

func (f *fakeReservationRepo) UpdateTimeSlots(_ context.Context, _ int64, slots []domain.TimeSlot, filled int) error {
	f.savedSlots = slots
	f.savedFilled = filled
	f.slotsUpdated = true
	return nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, _ domain.ReservationStatus) error {
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if f.reservation == nil || f.reservation.ID != id {
		return reservationRepo.ErrReservationNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAssignmentRepo struct {
	assignments []*domain.Assignment
}

func (f *fakeAssignmentRepo) GetByFilter(_ context.Context, _ domain.AssignmentFilter) ([]*domain.Assignment, error) {
	return f.assignments, nil
}

type fakeCompanyClient struct {
	employee *companyservice.Employee
	err      error
}

func (f *fakeCompanyClient) GetEmployeeWithGracefulDegradation(_ context.Context, _, _ int64) (*companyservice.Employee, error) {
	return f.employee, f.err
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              5,
		CompanyID:       10,
		OfficeName:      "Shibuya HQ",
		ReservationDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "12:00",
		MaxParticipants: 3,
		ServiceDuration: 30,
		BreakDuration:   10,
		SlotCount:       3,
		TimeSlots: []domain.TimeSlot{
			{Slot: 1, StartTime: "10:00", EndTime: "10:30", Duration: 30},
			{Slot: 2, StartTime: "10:40", EndTime: "11:10", Duration: 30},
			{Slot: 3, StartTime: "11:20", EndTime: "11:50", Duration: 30},
		},
		Status: domain.StatusRecruiting,
	}
}

func newService(repo *fakeReservationRepo, assignments *fakeAssignmentRepo, client *fakeCompanyClient) *Service {
	return NewService(repo, assignments, client, passthroughTxManager{}, nopLogger{})
}

func TestRegisterEmployee_ExplicitSlot(t *testing.T) {
	repo := &fakeReservationRepo{reservation: testReservation()}
	client := &fakeCompanyClient{employee: &companyservice.Employee{
		ID:         42,
		CompanyID:  10,
		Name:       "Tanaka",
		Department: ptr.Ptr("Sales"),
	}}
	svc := newService(repo, &fakeAssignmentRepo{}, client)

	resp, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{
		EmployeeID: 42,
		SlotNumber: ptr.Ptr(2),
	})

	require.NoError(t, err)
	assert.True(t, repo.slotsUpdated)
	assert.Equal(t, 1, repo.savedFilled)

	slot := resp.TimeSlots[1]
	assert.True(t, slot.IsFilled)
	require.NotNil(t, slot.EmployeeID)
	assert.Equal(t, int64(42), *slot.EmployeeID)
	// Данные сотрудника взяты из CompanyService
	require.NotNil(t, slot.EmployeeName)
	assert.Equal(t, "Tanaka", *slot.EmployeeName)
	assert.Equal(t, "Sales", *slot.EmployeeDepartment)
}

func TestRegisterEmployee_FirstFreeSlot(t *testing.T) {
	res := testReservation()
	res.TimeSlots[0].IsFilled = true
	res.TimeSlots[0].EmployeeID = ptr.Ptr(int64(1))
	repo := &fakeReservationRepo{reservation: res}
	client := &fakeCompanyClient{employee: &companyservice.Employee{ID: 42, Name: "Tanaka"}}
	svc := newService(repo, &fakeAssignmentRepo{}, client)

	resp, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{EmployeeID: 42})

	require.NoError(t, err)
	// Первый свободный - слот 2
	assert.True(t, resp.TimeSlots[1].IsFilled)
	assert.Equal(t, 2, repo.savedFilled)
}

func TestRegisterEmployee_GracefulDegradationUsesRequestData(t *testing.T) {
	repo := &fakeReservationRepo{reservation: testReservation()}
	client := &fakeCompanyClient{err: companyservice.ErrServiceDegraded}
	svc := newService(repo, &fakeAssignmentRepo{}, client)

	resp, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{
		EmployeeID:   42,
		SlotNumber:   ptr.Ptr(1),
		EmployeeName: ptr.Ptr("Tanaka (из запроса)"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.TimeSlots[0].EmployeeName)
	assert.Equal(t, "Tanaka (из запроса)", *resp.TimeSlots[0].EmployeeName)
}

func TestRegisterEmployee_Errors(t *testing.T) {
	client := &fakeCompanyClient{employee: &companyservice.Employee{ID: 42, Name: "Tanaka"}}

	t.Run("slot already filled", func(t *testing.T) {
		res := testReservation()
		res.TimeSlots[0].IsFilled = true
		svc := newService(&fakeReservationRepo{reservation: res}, &fakeAssignmentRepo{}, client)

		_, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{
			EmployeeID: 42,
			SlotNumber: ptr.Ptr(1),
		})
		assert.ErrorIs(t, err, ErrSlotAlreadyFilled)
	})

	t.Run("slot not found", func(t *testing.T) {
		svc := newService(&fakeReservationRepo{reservation: testReservation()}, &fakeAssignmentRepo{}, client)

		_, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{
			EmployeeID: 42,
			SlotNumber: ptr.Ptr(9),
		})
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("reservation full", func(t *testing.T) {
		res := testReservation()
		for i := range res.TimeSlots {
			res.TimeSlots[i].IsFilled = true
		}
		svc := newService(&fakeReservationRepo{reservation: res}, &fakeAssignmentRepo{}, client)

		_, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{EmployeeID: 42})
		assert.ErrorIs(t, err, ErrReservationFull)
	})

	t.Run("employee not found", func(t *testing.T) {
		svc := newService(&fakeReservationRepo{reservation: testReservation()}, &fakeAssignmentRepo{},
			&fakeCompanyClient{err: companyservice.ErrEmployeeNotFound})

		_, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{EmployeeID: 42})
		assert.ErrorIs(t, err, ErrEmployeeNotFound)
	})

	t.Run("not editable", func(t *testing.T) {
		res := testReservation()
		res.Status = domain.StatusClosed
		svc := newService(&fakeReservationRepo{reservation: res}, &fakeAssignmentRepo{}, client)

		_, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{EmployeeID: 42})
		assert.ErrorIs(t, err, ErrNotEditable)
	})

	t.Run("reservation not found", func(t *testing.T) {
		svc := newService(&fakeReservationRepo{}, &fakeAssignmentRepo{}, client)

		_, err := svc.RegisterEmployee(context.Background(), 5, &models.RegisterEmployeeRequest{EmployeeID: 42})
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestUnregisterEmployee(t *testing.T) {
	res := testReservation()
	res.TimeSlots[1].IsFilled = true
	res.TimeSlots[1].EmployeeID = ptr.Ptr(int64(42))
	res.TimeSlots[1].EmployeeName = ptr.Ptr("Tanaka")
	res.SlotsFilled = 1
	repo := &fakeReservationRepo{reservation: res}
	svc := newService(repo, &fakeAssignmentRepo{}, &fakeCompanyClient{})

	resp, err := svc.UnregisterEmployee(context.Background(), 5, 2)

	require.NoError(t, err)
	assert.False(t, resp.TimeSlots[1].IsFilled)
	assert.Nil(t, resp.TimeSlots[1].EmployeeID)
	assert.Equal(t, 0, repo.savedFilled)
}

func TestUnregisterEmployee_EmptySlot(t *testing.T) {
	svc := newService(&fakeReservationRepo{reservation: testReservation()}, &fakeAssignmentRepo{}, &fakeCompanyClient{})

	_, err := svc.UnregisterEmployee(context.Background(), 5, 1)

	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestGetCapacity(t *testing.T) {
	res := testReservation()
	res.TimeSlots[0].IsFilled = true
	repo := &fakeReservationRepo{reservation: res}
	assignments := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		{ID: 1, ReservationID: 5, StaffID: 7, Status: domain.AssignmentPending},
		{ID: 2, ReservationID: 5, StaffID: 8, Status: domain.AssignmentConfirmed},
		{ID: 3, ReservationID: 5, StaffID: 9, Status: domain.AssignmentRejected},
	}}
	svc := newService(repo, assignments, &fakeCompanyClient{})

	resp, err := svc.GetCapacity(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalSlots)
	assert.Equal(t, 1, resp.EmployeeFilledCount)
	assert.Equal(t, 1, resp.PendingCount)
	assert.Equal(t, 1, resp.ConfirmedCount)
	assert.Equal(t, 1, resp.AvailableSlots)
	assert.False(t, resp.IsOverCapacity)
}

func TestDelete(t *testing.T) {
	repo := &fakeReservationRepo{reservation: testReservation()}
	svc := newService(repo, &fakeAssignmentRepo{}, &fakeCompanyClient{})

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, []int64{5}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrReservationNotFound)
}
