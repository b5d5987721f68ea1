package assignments

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/assignment"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
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

type fixedTimeProvider struct{ now time.Time }

func (f fixedTimeProvider) Now() time.Time { return f.now }

type fakeAssignmentRepo struct {
	byID        map[int64]*domain.Assignment
	all         []*domain.Assignment
	lastStatus  domain.AssignmentStatus
	lastFixedAt sql.NullTime
	deleted     []int64
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id int64) (*domain.Assignment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	return a, nil
}

func (f *fakeAssignmentRepo) GetByFilter(_ context.Context, filter domain.AssignmentFilter) ([]*domain.Assignment, error) {
	result := make([]*domain.Assignment, 0)
	for _, a := range f.all {
		if filter.ReservationID != nil && a.ReservationID != *filter.ReservationID {
			continue
		}
		if filter.StaffID != nil && a.StaffID != *filter.StaffID {
			continue
		}
		if filter.OnlyActive && !a.IsActive() {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeAssignmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AssignmentStatus, responseAt sql.NullTime) error {
	if _, ok := f.byID[id]; !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	f.lastStatus = status
	f.lastFixedAt = responseAt
	return nil
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeReservationRepo struct {
	reservation *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func pendingAssignment() *domain.Assignment {
	return &domain.Assignment{
		ID:            100,
		ReservationID: 5,
		StaffID:       7,
		Status:        domain.AssignmentPending,
		AssignedAt:    time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:              5,
		MaxParticipants: 2,
		SlotCount:       2,
		TimeSlots: []domain.TimeSlot{
			{Slot: 1, StartTime: "10:00", EndTime: "10:30", Duration: 30},
			{Slot: 2, StartTime: "10:40", EndTime: "11:10", Duration: 30},
		},
		Status: domain.StatusAssigning,
	}
}

func newService(assignments *fakeAssignmentRepo, reservations *fakeReservationRepo, enforceCapacity bool) *Service {
	return NewService(
		assignments,
		reservations,
		passthroughTxManager{},
		fixedTimeProvider{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		enforceCapacity,
		nopLogger{},
	)
}

func TestRespond_Accept(t *testing.T) {
	a := pendingAssignment()
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: a}}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "accept"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentConfirmed), resp.Status)
	require.NotNil(t, resp.ResponseAt)
	assert.Equal(t, domain.AssignmentConfirmed, repo.lastStatus)
	assert.True(t, repo.lastFixedAt.Valid)
}

func TestRespond_Reject(t *testing.T) {
	a := pendingAssignment()
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: a}}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "reject"})

	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentRejected), resp.Status)
}

func TestRespond_Errors(t *testing.T) {
	t.Run("wrong staff", func(t *testing.T) {
		repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: pendingAssignment()}}
		svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

		_, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 8, Action: "accept"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("already answered", func(t *testing.T) {
		a := pendingAssignment()
		a.Status = domain.AssignmentConfirmed
		repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: a}}
		svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

		_, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "accept"})
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("unknown action", func(t *testing.T) {
		repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: pendingAssignment()}}
		svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

		_, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "maybe"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{}}
		svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

		_, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "accept"})
		assert.ErrorIs(t, err, ErrAssignmentNotFound)
	})
}

func TestRespond_CapacityEnforced(t *testing.T) {
	a := pendingAssignment()
	other1 := &domain.Assignment{ID: 101, ReservationID: 5, StaffID: 8, Status: domain.AssignmentConfirmed}
	other2 := &domain.Assignment{ID: 102, ReservationID: 5, StaffID: 9, Status: domain.AssignmentConfirmed}
	repo := &fakeAssignmentRepo{
		byID: map[int64]*domain.Assignment{100: a},
		all:  []*domain.Assignment{a, other1, other2},
	}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, true)

	// Вместимость 2, уже два подтвержденных - акцепт блокируется
	_, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "accept"})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestRespond_CapacityNotEnforcedByDefault(t *testing.T) {
	a := pendingAssignment()
	other1 := &domain.Assignment{ID: 101, ReservationID: 5, StaffID: 8, Status: domain.AssignmentConfirmed}
	other2 := &domain.Assignment{ID: 102, ReservationID: 5, StaffID: 9, Status: domain.AssignmentConfirmed}
	repo := &fakeAssignmentRepo{
		byID: map[int64]*domain.Assignment{100: a},
		all:  []*domain.Assignment{a, other1, other2},
	}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.Respond(context.Background(), 100, &models.RespondRequest{StaffID: 7, Action: "accept"})

	// Перебор вместимости допустим - он только подсвечивается в сводке
	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentConfirmed), resp.Status)
}

func TestConfirm_AnyState(t *testing.T) {
	a := pendingAssignment()
	a.Status = domain.AssignmentRejected
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: a}}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.Confirm(context.Background(), 100)

	// Административное подтверждение работает из любого статуса
	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentConfirmed), resp.Status)
	assert.False(t, repo.lastFixedAt.Valid)
}

func TestComplete(t *testing.T) {
	a := pendingAssignment()
	a.Status = domain.AssignmentConfirmed
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: a}}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.Complete(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, string(domain.AssignmentCompleted), resp.Status)
}

func TestDelete(t *testing.T) {
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{100: pendingAssignment()}}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	require.NoError(t, svc.Delete(context.Background(), 100))
	assert.Equal(t, []int64{100}, repo.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), 999), ErrAssignmentNotFound)
}

func TestListByReservation(t *testing.T) {
	a := pendingAssignment()
	repo := &fakeAssignmentRepo{
		byID: map[int64]*domain.Assignment{100: a},
		all:  []*domain.Assignment{a},
	}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.ListByReservation(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(100), resp.Assignments[0].ID)
}

func TestListByReservation_NotFound(t *testing.T) {
	svc := newService(&fakeAssignmentRepo{}, &fakeReservationRepo{}, false)

	_, err := svc.ListByReservation(context.Background(), 5)

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestListByStaff(t *testing.T) {
	a := pendingAssignment()
	rejected := &domain.Assignment{ID: 101, ReservationID: 6, StaffID: 7, Status: domain.AssignmentRejected}
	repo := &fakeAssignmentRepo{all: []*domain.Assignment{a, rejected}}
	svc := newService(repo, &fakeReservationRepo{reservation: testReservation()}, false)

	resp, err := svc.ListByStaff(context.Background(), &models.ListByStaffRequest{StaffID: 7, OnlyActive: true})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}
