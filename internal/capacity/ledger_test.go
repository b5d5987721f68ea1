package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	"github.com/m04kA/SMC-DispatchService/pkg/ptr"
)

func makeReservation(slotCount, maxParticipants, filled int) *domain.Reservation {
	slots := make([]domain.TimeSlot, slotCount)
	for i := range slots {
		slots[i] = domain.TimeSlot{Slot: i + 1, Duration: 30}
		if i < filled {
			slots[i].IsFilled = true
			slots[i].EmployeeID = ptr.Ptr(int64(100 + i))
		}
	}
	return &domain.Reservation{
		SlotCount:       slotCount,
		MaxParticipants: maxParticipants,
		TimeSlots:       slots,
	}
}

func assignment(status domain.AssignmentStatus) domain.Assignment {
	return domain.Assignment{Status: status}
}

func TestSummarize_Empty(t *testing.T) {
	res := makeReservation(4, 2, 0)

	s := Summarize(res, nil)

	assert.Equal(t, 4, s.TotalSlots)
	assert.Equal(t, 0, s.EmployeeFilledCount)
	assert.Equal(t, 4, s.AvailableSlots)
	assert.False(t, s.IsOverCapacity)
}

func TestSummarize_TotalSlots(t *testing.T) {
	tests := []struct {
		name            string
		slotCount       int
		maxParticipants int
		want            int
	}{
		{"slots dominate", 6, 2, 6},
		{"participants dominate", 2, 5, 5},
		{"never below one", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := makeReservation(tt.slotCount, tt.maxParticipants, 0)
			assert.Equal(t, tt.want, Summarize(res, nil).TotalSlots)
		})
	}
}

func TestSummarize_AssignmentCounts(t *testing.T) {
	res := makeReservation(6, 6, 1)
	assignments := []domain.Assignment{
		assignment(domain.AssignmentPending),
		assignment(domain.AssignmentPending),
		assignment(domain.AssignmentConfirmed),
		assignment(domain.AssignmentCompleted),
		assignment(domain.AssignmentRejected),
		assignment(domain.AssignmentCancelled),
	}

	s := Summarize(res, assignments)

	assert.Equal(t, 2, s.PendingCount)
	assert.Equal(t, 1, s.ConfirmedCount)
	assert.Equal(t, 1, s.CompletedCount)
	assert.Equal(t, 1, s.EmployeeFilledCount)
	// 6 мест, 4 активных ассайна
	assert.Equal(t, 2, s.AvailableSlots)
	assert.Equal(t, 5, s.Occupied())
}

func TestSummarize_OverCapacity(t *testing.T) {
	// 2 места: сотрудник в слоте + 2 подтвержденных ассайна = перебор
	res := makeReservation(3, 2, 1)
	assignments := []domain.Assignment{
		assignment(domain.AssignmentConfirmed),
		assignment(domain.AssignmentConfirmed),
	}

	s := Summarize(res, assignments)

	assert.True(t, s.IsOverCapacity)
	assert.Equal(t, 1, s.AvailableSlots)
}

func TestSummarize_PendingDoesNotTriggerOverCapacity(t *testing.T) {
	res := makeReservation(3, 2, 1)
	assignments := []domain.Assignment{
		assignment(domain.AssignmentPending),
		assignment(domain.AssignmentPending),
	}

	s := Summarize(res, assignments)

	// Неотвеченные офферы резервируют места, но перебором не считаются
	assert.False(t, s.IsOverCapacity)
	assert.Equal(t, 1, s.AvailableSlots)
}

func TestSummarize_AvailableNeverNegative(t *testing.T) {
	res := makeReservation(2, 2, 2)
	assignments := []domain.Assignment{
		assignment(domain.AssignmentConfirmed),
		assignment(domain.AssignmentConfirmed),
		assignment(domain.AssignmentConfirmed),
	}

	s := Summarize(res, assignments)

	assert.Equal(t, 0, s.AvailableSlots)
	assert.True(t, s.IsOverCapacity)
}
