package preview_time_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/timeplan"
)

// UseCase use case предпросмотра нарезки слотов
// Ничего не пишет в БД - отдает компании картину слотов и заработка
// до создания предложения
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет предпросмотр нарезки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewTimeSlots: window=%s-%s service=%d break=%d",
		req.StartTime, req.EndTime, req.ServiceDuration, req.BreakDuration)

	// 1. Нарезаем слоты (с учетом вместимости, если указана)
	var result *timeplan.Result
	var err error
	if req.MaxParticipants != nil {
		result, err = timeplan.PlanLimited(req.StartTime, req.EndTime, req.ServiceDuration, req.BreakDuration, *req.MaxParticipants)
	} else {
		result, err = timeplan.Plan(req.StartTime, req.EndTime, req.ServiceDuration, req.BreakDuration)
	}
	if err != nil {
		uc.logger.Warn("PreviewTimeSlots: planning failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Окно слишком короткое - отдаем описание нехватки, это не ошибка
	if !result.Feasible {
		uc.logger.Info("PreviewTimeSlots: window too short (need %d, have %d)",
			result.Shortfall.RequiredMinutes, result.Shortfall.AvailableMinutes)
		return &Response{
			Feasible:     false,
			Slots:        []SlotPreview{},
			TotalMinutes: result.TotalMinutes,
			Shortfall: &ShortfallInfo{
				RequiredMinutes:  result.Shortfall.RequiredMinutes,
				AvailableMinutes: result.Shortfall.AvailableMinutes,
				ExcessMinutes:    result.Shortfall.ExcessMinutes,
			},
		}, nil
	}

	// 3. Считаем заработок по ставке, если она указана
	var perSlot []int
	var total int
	if req.HourlyRate > 0 {
		perSlot, total = result.Earnings(req.HourlyRate)
	}

	slots := make([]SlotPreview, 0, len(result.Slots))
	for i := range result.Slots {
		preview := SlotPreview{
			Slot:      result.Slots[i].Slot,
			StartTime: result.Slots[i].StartTime.String(),
			EndTime:   result.Slots[i].EndTime.String(),
			Duration:  result.Slots[i].Duration,
		}
		if perSlot != nil {
			preview.Earnings = perSlot[i]
		}
		slots = append(slots, preview)
	}

	uc.logger.Info("PreviewTimeSlots: planned %d slots (physical capacity %d)", result.SlotCount, result.PhysicalSlotCount)

	return &Response{
		Feasible:          true,
		SlotCount:         result.SlotCount,
		PhysicalSlotCount: result.PhysicalSlotCount,
		Slots:             slots,
		TotalMinutes:      result.TotalMinutes,
		UsedMinutes:       result.UsedMinutes,
		RemainingMinutes:  result.RemainingMinutes,
		TotalEarnings:     total,
	}, nil
}
