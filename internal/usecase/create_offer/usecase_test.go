package create_offer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/internal/config"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DispatchService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-DispatchService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// passthroughTxManager выполняет fn без реальной транзакции
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAssignmentRepo struct {
	existing []*domain.Assignment
	created  *domain.Assignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	a.ID = 100
	f.created = a
	return a, nil
}

func (f *fakeAssignmentRepo) GetByFilter(_ context.Context, filter domain.AssignmentFilter) ([]*domain.Assignment, error) {
	result := make([]*domain.Assignment, 0)
	for _, a := range f.existing {
		if filter.OnlyActive && !a.IsActive() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

type fakeReservationRepo struct {
	reservation   *domain.Reservation
	statusUpdates []domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeStaffClient struct {
	staff *staffservice.Staff
	err   error
}

func (f *fakeStaffClient) GetActiveStaff(_ context.Context, _ int64) (*staffservice.Staff, error) {
	return f.staff, f.err
}

type fixedTimeProvider struct{ now time.Time }

func (f fixedTimeProvider) Now() time.Time { return f.now }

func testReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:              5,
		CompanyID:       10,
		MaxParticipants: 2,
		SlotCount:       3,
		TimeSlots: []domain.TimeSlot{
			{Slot: 1, StartTime: "10:00", EndTime: "10:30", Duration: 30},
			{Slot: 2, StartTime: "10:40", EndTime: "11:10", Duration: 30},
			{Slot: 3, StartTime: "11:20", EndTime: "11:50", Duration: 30},
		},
		Status: status,
	}
}

func newUseCase(
	assignments *fakeAssignmentRepo,
	reservations *fakeReservationRepo,
	staff *fakeStaffClient,
	mode config.OfferMode,
	enforceCapacity bool,
) *UseCase {
	uc := NewUseCase(assignments, reservations, staff, passthroughTxManager{}, mode, enforceCapacity, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func activeStaff() *fakeStaffClient {
	return &fakeStaffClient{staff: &staffservice.Staff{ID: 7, Name: "Sato", IsActive: true}}
}

func TestExecute_WindowMode_Success(t *testing.T) {
	assignments := &fakeAssignmentRepo{}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusRecruiting)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeWindow, false)
	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, string(domain.AssignmentPending), resp.Status)
	assert.Nil(t, resp.SlotNumber)

	// Первый оффер переводит предложение в assigning
	require.Len(t, reservations.statusUpdates, 1)
	assert.Equal(t, domain.StatusAssigning, reservations.statusUpdates[0])
}

func TestExecute_WindowMode_DuplicateStaff(t *testing.T) {
	assignments := &fakeAssignmentRepo{existing: []*domain.Assignment{
		{ID: 1, ReservationID: 5, StaffID: 7, Status: domain.AssignmentPending},
	}}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusAssigning)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeWindow, false)
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	assert.ErrorIs(t, err, ErrDuplicateAssignment)
	assert.Nil(t, assignments.created)
}

func TestExecute_WindowMode_RejectedAssignmentFreesSeat(t *testing.T) {
	// Отклоненный ассайн не мешает повторному офферу тому же стаффу
	assignments := &fakeAssignmentRepo{existing: []*domain.Assignment{
		{ID: 1, ReservationID: 5, StaffID: 7, Status: domain.AssignmentRejected},
	}}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusAssigning)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeWindow, false)
	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentPending), resp.Status)
	// Статус уже assigning - повторного перевода нет
	assert.Empty(t, reservations.statusUpdates)
}

func TestExecute_SlotMode_Success(t *testing.T) {
	assignments := &fakeAssignmentRepo{}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusRecruiting)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeSlot, false)
	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7, SlotNumber: ptr.Ptr(2)})

	require.NoError(t, err)
	require.NotNil(t, resp.SlotNumber)
	assert.Equal(t, 2, *resp.SlotNumber)
}

func TestExecute_SlotMode_SlotTaken(t *testing.T) {
	assignments := &fakeAssignmentRepo{existing: []*domain.Assignment{
		{ID: 1, ReservationID: 5, StaffID: 8, SlotNumber: ptr.Ptr(2), Status: domain.AssignmentConfirmed},
	}}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusAssigning)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeSlot, false)
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7, SlotNumber: ptr.Ptr(2)})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_SlotMode_SlotNumberRequired(t *testing.T) {
	assignments := &fakeAssignmentRepo{}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusRecruiting)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeSlot, false)
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotMode_SlotNotFound(t *testing.T) {
	assignments := &fakeAssignmentRepo{}
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusRecruiting)}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeSlot, false)
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7, SlotNumber: ptr.Ptr(99)})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_CapacityEnforced(t *testing.T) {
	// Вместимость 2, оба места заняты активными ассайнами
	assignments := &fakeAssignmentRepo{existing: []*domain.Assignment{
		{ID: 1, ReservationID: 5, StaffID: 8, Status: domain.AssignmentConfirmed},
		{ID: 2, ReservationID: 5, StaffID: 9, Status: domain.AssignmentPending},
	}}
	res := testReservation(domain.StatusAssigning)
	res.MaxParticipants = 2
	res.SlotCount = 2
	res.TimeSlots = res.TimeSlots[:2]
	reservations := &fakeReservationRepo{reservation: res}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeWindow, true)
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_CapacityNotEnforcedByDefault(t *testing.T) {
	// Без контроля вместимости оффер сверх лимита проходит
	assignments := &fakeAssignmentRepo{existing: []*domain.Assignment{
		{ID: 1, ReservationID: 5, StaffID: 8, Status: domain.AssignmentConfirmed},
		{ID: 2, ReservationID: 5, StaffID: 9, Status: domain.AssignmentPending},
	}}
	res := testReservation(domain.StatusAssigning)
	res.MaxParticipants = 2
	res.SlotCount = 2
	res.TimeSlots = res.TimeSlots[:2]
	reservations := &fakeReservationRepo{reservation: res}

	uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeWindow, false)
	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentPending), resp.Status)
}

func TestExecute_ReservationNotAcceptingOffers(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.StatusConfirmed,
		domain.StatusServiceCompleted,
		domain.StatusClosed,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			assignments := &fakeAssignmentRepo{}
			reservations := &fakeReservationRepo{reservation: testReservation(status)}

			uc := newUseCase(assignments, reservations, activeStaff(), config.OfferModeWindow, false)
			_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

			assert.ErrorIs(t, err, ErrNotAcceptingOffers)
		})
	}
}

func TestExecute_StaffErrors(t *testing.T) {
	reservations := &fakeReservationRepo{reservation: testReservation(domain.StatusRecruiting)}

	t.Run("not found", func(t *testing.T) {
		uc := newUseCase(&fakeAssignmentRepo{}, reservations, &fakeStaffClient{err: staffservice.ErrStaffNotFound}, config.OfferModeWindow, false)
		_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("inactive", func(t *testing.T) {
		uc := newUseCase(&fakeAssignmentRepo{}, reservations, &fakeStaffClient{err: staffservice.ErrStaffInactive}, config.OfferModeWindow, false)
		_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})
		assert.ErrorIs(t, err, ErrStaffInactive)
	})
}

func TestExecute_ReservationNotFound(t *testing.T) {
	uc := newUseCase(&fakeAssignmentRepo{}, &fakeReservationRepo{}, activeStaff(), config.OfferModeWindow, false)
	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, StaffID: 7})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
