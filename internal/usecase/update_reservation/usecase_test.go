package update_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DispatchService/internal/timeplan"
	"github.com/m04kA/SMC-DispatchService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	updated     *domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.reservation, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	res.UpdatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.updated = res
	return res, nil
}

// Предложение 10:00-18:00, слоты по 30 минут с перерывом 10 (12 слотов),
// первый слот занят сотрудником
func storedReservation(t *testing.T) *domain.Reservation {
	t.Helper()

	plan, err := timeplan.Plan("10:00", "18:00", 30, 10)
	require.NoError(t, err)
	require.Equal(t, 12, plan.SlotCount)

	slots := plan.Slots
	slots[0].IsFilled = true
	slots[0].EmployeeID = ptr.Ptr(int64(42))
	slots[0].EmployeeName = ptr.Ptr("Suzuki")

	return &domain.Reservation{
		ID:              5,
		CompanyID:       10,
		OfficeName:      "Shibuya HQ",
		ReservationDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "18:00",
		MaxParticipants: 12,
		TotalDuration:   480,
		ServiceDuration: 30,
		BreakDuration:   10,
		SlotCount:       12,
		TimeSlots:       slots,
		SlotsFilled:     1,
		HourlyRate:      1500,
		Status:          domain.StatusRecruiting,
	}
}

func requestFromReservation(res *domain.Reservation) *Request {
	return &Request{
		ReservationID:   res.ID,
		OfficeName:      res.OfficeName,
		OfficeAddress:   res.OfficeAddress,
		ReservationDate: res.ReservationDate,
		StartTime:       res.StartTime,
		EndTime:         res.EndTime,
		MaxParticipants: res.MaxParticipants,
		ServiceDuration: res.ServiceDuration,
		BreakDuration:   res.BreakDuration,
		HourlyRate:      res.HourlyRate,
	}
}

func TestExecute_NoReplanWhenTimingUnchanged(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation(t)}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	req := requestFromReservation(repo.reservation)
	req.OfficeName = "Shinjuku Annex"
	req.Notes = ptr.Ptr("перенесли точку сбора")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Replanned)
	assert.Equal(t, "Shinjuku Annex", resp.OfficeName)
	assert.Equal(t, 12, resp.SlotCount)
	// Заполнение первого слота не тронуто
	assert.True(t, resp.TimeSlots[0].IsFilled)
	assert.Equal(t, 1, resp.SlotsFilled)
}

func TestExecute_ReplanPreservesUnchangedSlotFills(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation(t)}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	// Сужаем окно: 10:00-12:00 вмещает 3 слота, первый слот не сдвинулся
	req := requestFromReservation(repo.reservation)
	req.EndTime = "12:00"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Replanned)
	assert.Equal(t, 3, resp.SlotCount)
	assert.Equal(t, 120, resp.TotalDuration)

	assert.True(t, resp.TimeSlots[0].IsFilled)
	require.NotNil(t, resp.TimeSlots[0].EmployeeID)
	assert.Equal(t, int64(42), *resp.TimeSlots[0].EmployeeID)
	assert.Equal(t, 1, resp.SlotsFilled)
}

func TestExecute_ReplanDropsShiftedSlotFills(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation(t)}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	// Сдвигаем начало окна: все слоты меняют время, заполнение пропадает
	req := requestFromReservation(repo.reservation)
	req.StartTime = "11:00"

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Replanned)
	for _, slot := range resp.TimeSlots {
		assert.False(t, slot.IsFilled)
		assert.Nil(t, slot.EmployeeID)
	}
	assert.Equal(t, 0, resp.SlotsFilled)
}

func TestExecute_ReplanOnDurationChange(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation(t)}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	// Те же границы окна, но слоты по 40 минут: интервалы меняются
	req := requestFromReservation(repo.reservation)
	req.ServiceDuration = 40

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Replanned)
	// (480+10)/(40+10) = 9 слотов
	assert.Equal(t, 9, resp.SlotCount)
	assert.False(t, resp.TimeSlots[0].IsFilled)
	assert.Equal(t, 0, resp.SlotsFilled)
}

func TestExecute_NotEditable(t *testing.T) {
	res := storedReservation(t)
	res.Status = domain.StatusConfirmed
	repo := &fakeReservationRepo{reservation: res}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), requestFromReservation(res))

	assert.ErrorIs(t, err, ErrNotEditable)
	assert.Nil(t, repo.updated)
}

func TestExecute_WindowTooShort(t *testing.T) {
	repo := &fakeReservationRepo{reservation: storedReservation(t)}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	req := requestFromReservation(repo.reservation)
	req.EndTime = "10:20"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrWindowTooShort)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := NewUseCase(repo, passthroughTxManager{}, nopLogger{})

	res := storedReservation(t)
	_, err := uc.Execute(context.Background(), requestFromReservation(res))

	assert.ErrorIs(t, err, ErrReservationNotFound)
}
