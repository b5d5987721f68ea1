package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DispatchService/internal/timeplan"
)

// UseCase use case для обновления предложения
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления предложения
//
// Если изменились окно, длительности или вместимость, слоты пересчитываются.
// Заполнение переносится только на слоты с тем же интервалом - записи на
// сдвинувшееся время пропадают, и счетчик занятости пересчитывается.
// Использует сериализуемую транзакцию: строка предложения блокируется,
// параллельная регистрация сотрудника не потеряется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d window=%s-%s service=%d break=%d",
		req.ReservationID, req.StartTime, req.EndTime, req.ServiceDuration, req.BreakDuration)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation
	var replanned bool

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем предложение с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.2. Редактировать можно только до подтверждения
		if !res.CanBeEdited() {
			return ErrNotEditable
		}

		// 2.3. Пересчитываем слоты, если изменились параметры нарезки
		if needsReplan(res, req) {
			plan, err := timeplan.PlanLimited(req.StartTime, req.EndTime, req.ServiceDuration, req.BreakDuration, req.MaxParticipants)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if !plan.Feasible {
				return fmt.Errorf("%w: need %d minutes, have %d",
					ErrWindowTooShort, plan.Shortfall.RequiredMinutes, plan.Shortfall.AvailableMinutes)
			}

			// Переносим заполнение на слоты с неизменившимся интервалом
			res.TimeSlots = timeplan.MergeFills(res.TimeSlots, plan.Slots)
			res.TotalDuration = plan.TotalMinutes
			res.SlotCount = plan.SlotCount
			replanned = true
		}

		// 2.4. Применяем остальные поля
		res.OfficeName = req.OfficeName
		res.OfficeAddress = req.OfficeAddress
		res.ReservationDate = req.ReservationDate
		res.StartTime = req.StartTime
		res.EndTime = req.EndTime
		res.ApplicationDeadline = req.ApplicationDeadline
		res.MaxParticipants = req.MaxParticipants
		res.ServiceDuration = req.ServiceDuration
		res.BreakDuration = req.BreakDuration
		res.HourlyRate = req.HourlyRate
		res.Notes = req.Notes
		res.Requirements = req.Requirements
		res.SlotsFilled = res.FilledSlotCount()

		// 2.5. Сохраняем
		updated, err := uc.reservationRepo.Update(txCtx, res)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		uc.logger.Warn("UpdateReservation: failed for id=%d: %v", req.ReservationID, err)
		return nil, err
	}

	uc.logger.Info("UpdateReservation: updated reservation id=%d (replanned=%t, slots=%d, filled=%d)",
		result.ID, replanned, result.SlotCount, result.SlotsFilled)

	return &Response{
		ID:              result.ID,
		CompanyID:       result.CompanyID,
		OfficeName:      result.OfficeName,
		ReservationDate: result.ReservationDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		MaxParticipants: result.MaxParticipants,
		TotalDuration:   result.TotalDuration,
		ServiceDuration: result.ServiceDuration,
		BreakDuration:   result.BreakDuration,
		SlotCount:       result.SlotCount,
		TimeSlots:       result.TimeSlots,
		SlotsFilled:     result.SlotsFilled,
		HourlyRate:      result.HourlyRate,
		Status:          string(result.Status),
		Replanned:       replanned,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
