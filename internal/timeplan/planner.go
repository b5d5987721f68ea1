package timeplan

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	"github.com/m04kA/SMC-DispatchService/pkg/types"
)

var (
	ErrInvalidWindow          = errors.New("timeplan: invalid time window")
	ErrInvalidServiceDuration = errors.New("timeplan: invalid service duration")
	ErrInvalidBreakDuration   = errors.New("timeplan: invalid break duration")
	ErrInvalidSlotLimit       = errors.New("timeplan: invalid slot limit")
)

// Shortfall описание нехватки времени, когда в окно не помещается ни один слот
type Shortfall struct {
	RequiredMinutes  int // Нужно для одного слота
	AvailableMinutes int // Доступно в окне
	ExcessMinutes    int // На сколько не хватает
}

// Result результат планирования слотов
type Result struct {
	Feasible bool // false - ни один слот не помещается в окно

	SlotCount         int // Количество построенных слотов
	PhysicalSlotCount int // Максимум слотов, физически помещающихся в окно

	Slots []domain.TimeSlot

	TotalMinutes     int // Длительность окна
	UsedMinutes      int // Занято слотами и перерывами между ними
	RemainingMinutes int // Хвост окна после последнего слота

	// Shortfall заполнен только при Feasible=false
	Shortfall *Shortfall
}

// Earnings считает заработок стаффа за слоты по часовой ставке
// Заработок каждого слота округляется вниз до йены, итог - сумма по слотам
func (r *Result) Earnings(hourlyRate int) (perSlot []int, total int) {
	perSlot = make([]int, 0, len(r.Slots))
	for i := range r.Slots {
		e := r.Slots[i].Duration * hourlyRate / domain.MinutesPerHour
		perSlot = append(perSlot, e)
		total += e
	}
	return perSlot, total
}

// Plan нарезает окно [startTime, endTime) на максимальное количество слотов
// длительностью serviceDuration минут с перерывами breakDuration между ними
//
// Количество слотов: максимальное n, при котором
// n*service + (n-1)*break <= total, то есть (total+break)/(service+break)
//
// Если не помещается ни один слот, возвращается Result с Feasible=false
// и заполненным Shortfall - это не ошибка
func Plan(startTime, endTime types.TimeString, serviceDuration, breakDuration int) (*Result, error) {
	return plan(startTime, endTime, serviceDuration, breakDuration, 0)
}

// PlanLimited работает как Plan, но строит не больше maxSlots слотов
// Используется, когда заявленная вместимость меньше физической емкости окна
func PlanLimited(startTime, endTime types.TimeString, serviceDuration, breakDuration, maxSlots int) (*Result, error) {
	if maxSlots < 1 {
		return nil, fmt.Errorf("%w: maxSlots must be >= 1, got %d", ErrInvalidSlotLimit, maxSlots)
	}
	return plan(startTime, endTime, serviceDuration, breakDuration, maxSlots)
}

func plan(startTime, endTime types.TimeString, serviceDuration, breakDuration, maxSlots int) (*Result, error) {
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start time %q: %v", ErrInvalidWindow, startTime, err)
	}
	if err := endTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end time %q: %v", ErrInvalidWindow, endTime, err)
	}
	if serviceDuration < domain.MinServiceDuration || serviceDuration > domain.MaxServiceDuration {
		return nil, fmt.Errorf("%w: %d minutes (allowed %d..%d)",
			ErrInvalidServiceDuration, serviceDuration, domain.MinServiceDuration, domain.MaxServiceDuration)
	}
	if breakDuration < domain.MinBreakDuration || breakDuration > domain.MaxBreakDuration {
		return nil, fmt.Errorf("%w: %d minutes (allowed %d..%d)",
			ErrInvalidBreakDuration, breakDuration, domain.MinBreakDuration, domain.MaxBreakDuration)
	}

	total, err := types.MinutesBetween(startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: window is empty", ErrInvalidWindow)
	}

	// 1. Считаем физическую емкость окна
	physical := (total + breakDuration) / (serviceDuration + breakDuration)

	if physical == 0 {
		return &Result{
			Feasible:     false,
			TotalMinutes: total,
			Slots:        []domain.TimeSlot{},
			Shortfall: &Shortfall{
				RequiredMinutes:  serviceDuration,
				AvailableMinutes: total,
				ExcessMinutes:    serviceDuration - total,
			},
		}, nil
	}

	// 2. Ограничиваем вместимостью, если задана
	count := physical
	if maxSlots > 0 && count > maxSlots {
		count = maxSlots
	}

	// 3. Строим слоты последовательно от начала окна
	slots := make([]domain.TimeSlot, 0, count)
	cursor := startTime
	for i := 1; i <= count; i++ {
		slotEnd, err := cursor.AddMinutes(serviceDuration)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
		slots = append(slots, domain.TimeSlot{
			Slot:      i,
			StartTime: cursor,
			EndTime:   slotEnd,
			Duration:  serviceDuration,
			IsFilled:  false,
		})
		cursor, err = slotEnd.AddMinutes(breakDuration)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
		}
	}

	used := count*serviceDuration + (count-1)*breakDuration

	return &Result{
		Feasible:          true,
		SlotCount:         count,
		PhysicalSlotCount: physical,
		Slots:             slots,
		TotalMinutes:      total,
		UsedMinutes:       used,
		RemainingMinutes:  total - used,
	}, nil
}
