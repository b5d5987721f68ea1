package create_offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/capacity"
	"github.com/m04kA/SMC-DispatchService/internal/config"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	staffClient "github.com/m04kA/SMC-DispatchService/internal/integrations/staffservice"
)

// UseCase use case для создания оффера стаффу
//
// Режим офферов задается конфигурацией:
//   - window: один оффер на все окно предложения, конфликт - повторный
//     активный ассайн того же стаффа
//   - slot: оффер на конкретный слот, конфликт - любой активный ассайн
//     на этом слоте
type UseCase struct {
	assignmentRepo  AssignmentRepository
	reservationRepo ReservationRepository
	staffClient     StaffServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	offerMode       config.OfferMode
	enforceCapacity bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	reservationRepo ReservationRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	offerMode config.OfferMode,
	enforceCapacity bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo:  assignmentRepo,
		reservationRepo: reservationRepo,
		staffClient:     staffClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		offerMode:       offerMode,
		enforceCapacity: enforceCapacity,
		logger:          logger,
	}
}

// Execute выполняет use case создания оффера
// Использует сериализуемую транзакцию: проверка конфликтов и вставка
// видят одно состояние, два параллельных оффера на один слот невозможны
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOffer: reservation=%d staff=%d slot=%v mode=%s",
		req.ReservationID, req.StaffID, req.SlotNumber, uc.offerMode)

	// 1. Валидация входных данных
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateOffer: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем стаффа до открытия транзакции
	if _, err := uc.staffClient.GetActiveStaff(ctx, req.StaffID); err != nil {
		switch {
		case errors.Is(err, staffClient.ErrStaffNotFound):
			uc.logger.Warn("CreateOffer: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		case errors.Is(err, staffClient.ErrStaffInactive):
			uc.logger.Warn("CreateOffer: staff id=%d is inactive", req.StaffID)
			return nil, ErrStaffInactive
		default:
			uc.logger.Error("CreateOffer: failed to get staff id=%d: %v", req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
	}

	var result *domain.Assignment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем предложение с блокировкой строки
		res, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3.2. Офферы принимаются только на этапах набора и ассайна
		if res.Status != domain.StatusRecruiting && res.Status != domain.StatusAssigning {
			return ErrNotAcceptingOffers
		}

		// 3.3. В слотовом режиме слот должен существовать
		if uc.offerMode == config.OfferModeSlot {
			if res.SlotByNumber(*req.SlotNumber) == nil {
				return ErrSlotNotFound
			}
		}

		// 3.4. Получаем активные ассайны предложения с блокировкой
		active, err := uc.assignmentRepo.GetByFilter(txCtx, domain.AssignmentFilter{
			ReservationID: &req.ReservationID,
			OnlyActive:    true,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get assignments: %v", ErrInternal, err)
		}

		// 3.5. Проверяем конфликты по режиму
		if err := uc.checkConflicts(req, active); err != nil {
			return err
		}

		// 3.6. Контроль вместимости (если включен)
		if uc.enforceCapacity {
			list := make([]domain.Assignment, 0, len(active))
			for _, a := range active {
				list = append(list, *a)
			}
			if capacity.Summarize(res, list).AvailableSlots == 0 {
				return ErrCapacityExceeded
			}
		}

		// 3.7. Создаем pending-ассайн
		assignment := &domain.Assignment{
			ReservationID: req.ReservationID,
			StaffID:       req.StaffID,
			Status:        domain.AssignmentPending,
			AssignedAt:    uc.timeProvider.Now(),
			Notes:         req.Notes,
		}
		if uc.offerMode == config.OfferModeSlot {
			assignment.SlotNumber = req.SlotNumber
		}

		created, err := uc.assignmentRepo.Create(txCtx, assignment)
		if err != nil {
			return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		// 3.8. Первый оффер переводит предложение в статус ассайна
		if res.Status == domain.StatusRecruiting {
			if err := uc.reservationRepo.UpdateStatus(txCtx, res.ID, domain.StatusAssigning); err != nil {
				return fmt.Errorf("%w: failed to update reservation status: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		uc.logger.Warn("CreateOffer: failed for reservation=%d staff=%d: %v", req.ReservationID, req.StaffID, err)
		return nil, err
	}

	uc.logger.Info("CreateOffer: created assignment id=%d for reservation=%d staff=%d",
		result.ID, req.ReservationID, req.StaffID)

	return &Response{
		ID:            result.ID,
		ReservationID: result.ReservationID,
		StaffID:       result.StaffID,
		SlotNumber:    result.SlotNumber,
		Status:        string(result.Status),
		AssignedAt:    result.AssignedAt,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if uc.offerMode == config.OfferModeSlot {
		if req.SlotNumber == nil {
			return fmt.Errorf("%w: slotNumber is required in slot mode", ErrInvalidInput)
		}
		if *req.SlotNumber < 1 {
			return fmt.Errorf("%w: slotNumber must be positive", ErrInvalidInput)
		}
	}
	return nil
}

// checkConflicts проверяет конфликты оффера с активными ассайнами
func (uc *UseCase) checkConflicts(req *Request, active []*domain.Assignment) error {
	for _, a := range active {
		// Повторный активный ассайн того же стаффа запрещен в обоих режимах
		if a.StaffID == req.StaffID {
			return ErrDuplicateAssignment
		}
	}

	if uc.offerMode == config.OfferModeSlot {
		for _, a := range active {
			if a.SlotNumber != nil && *a.SlotNumber == *req.SlotNumber {
				return ErrSlotTaken
			}
		}
	}

	return nil
}
