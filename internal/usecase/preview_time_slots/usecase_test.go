package preview_time_slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DispatchService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime:       "10:00",
		EndTime:         "18:00",
		ServiceDuration: 30,
		BreakDuration:   10,
		HourlyRate:      1500,
	})

	require.NoError(t, err)
	assert.True(t, resp.Feasible)
	assert.Equal(t, 12, resp.SlotCount)
	assert.Equal(t, 480, resp.TotalMinutes)
	assert.Equal(t, 470, resp.UsedMinutes)
	assert.Equal(t, 10, resp.RemainingMinutes)

	require.Len(t, resp.Slots, 12)
	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, "10:30", resp.Slots[0].EndTime)
	// floor(30*1500/60) = 750 за слот
	assert.Equal(t, 750, resp.Slots[0].Earnings)
	assert.Equal(t, 9000, resp.TotalEarnings)
}

func TestExecute_LimitedByParticipants(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime:       "10:00",
		EndTime:         "18:00",
		ServiceDuration: 30,
		BreakDuration:   10,
		MaxParticipants: ptr.Ptr(4),
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.SlotCount)
	assert.Equal(t, 12, resp.PhysicalSlotCount)
	assert.Len(t, resp.Slots, 4)
}

func TestExecute_WithoutRateNoEarnings(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime:       "10:00",
		EndTime:         "12:00",
		ServiceDuration: 30,
		BreakDuration:   0,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalEarnings)
	assert.Equal(t, 0, resp.Slots[0].Earnings)
}

func TestExecute_Infeasible(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartTime:       "10:00",
		EndTime:         "10:20",
		ServiceDuration: 30,
		BreakDuration:   0,
	})

	require.NoError(t, err)
	assert.False(t, resp.Feasible)
	assert.Empty(t, resp.Slots)
	require.NotNil(t, resp.Shortfall)
	assert.Equal(t, 30, resp.Shortfall.RequiredMinutes)
	assert.Equal(t, 20, resp.Shortfall.AvailableMinutes)
	assert.Equal(t, 10, resp.Shortfall.ExcessMinutes)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		StartTime:       "25:00",
		EndTime:         "18:00",
		ServiceDuration: 30,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
