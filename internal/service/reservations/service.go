package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/capacity"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	companyClient "github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
	"github.com/m04kA/SMC-DispatchService/internal/service/reservations/models"
)

// Service сервис для работы с предложениями
type Service struct {
	reservationRepo ReservationRepository
	assignmentRepo  AssignmentRepository
	companyClient   CompanyServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса предложений
func NewService(
	reservationRepo ReservationRepository,
	assignmentRepo AssignmentRepository,
	companyClient CompanyServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		assignmentRepo:  assignmentRepo,
		companyClient:   companyClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает предложение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(res), nil
}

// List получает список предложений с фильтрацией по компании и статусу
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations company=%v status=%v", req.CompanyID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// GetCapacity собирает сводку занятости предложения
// Сводка считается на лету из слотов и активных ассайнов
func (s *Service) GetCapacity(ctx context.Context, id int64) (*models.CapacityResponse, error) {
	s.logger.Info("GetCapacity: building capacity summary for reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetCapacity: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetCapacity - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.assignmentRepo.GetByFilter(ctx, domain.AssignmentFilter{ReservationID: &id})
	if err != nil {
		s.logger.Error("GetCapacity: assignments error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetCapacity - assignments error: %v", ErrInternal, err)
	}

	list := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		list = append(list, *a)
	}

	summary := capacity.Summarize(res, list)
	if summary.IsOverCapacity {
		s.logger.Warn("GetCapacity: reservation id=%d is over capacity (filled=%d confirmed=%d max=%d)",
			id, summary.EmployeeFilledCount, summary.ConfirmedCount, res.MaxParticipants)
	}

	return models.FromCapacitySummary(id, summary), nil
}

// Delete удаляет предложение вместе с ассайнами
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted reservation id=%d", id)
	return nil
}

// RegisterEmployee записывает сотрудника компании в слот предложения
// Если номер слота не указан, берется первый свободный
//
// Выполняется в сериализуемой транзакции: чтение предложения блокирует
// строку (FOR UPDATE), поэтому два параллельных запроса не займут один слот
func (s *Service) RegisterEmployee(ctx context.Context, reservationID int64, req *models.RegisterEmployeeRequest) (*models.ReservationResponse, error) {
	s.logger.Info("RegisterEmployee: reservation=%d employee=%d slot=%v", reservationID, req.EmployeeID, req.SlotNumber)

	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeId is required", ErrInvalidInput)
	}

	var result *domain.Reservation

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: RegisterEmployee - repository error: %v", ErrInternal, err)
		}

		if !res.CanBeEdited() {
			return ErrNotEditable
		}

		// 1. Выбираем слот
		slot, err := s.pickSlot(res, req.SlotNumber)
		if err != nil {
			return err
		}

		// 2. Обогащаем данные сотрудника из CompanyService
		// При недоступности сервиса берем данные из запроса
		name, department, position := req.EmployeeName, req.EmployeeDepartment, req.EmployeePosition
		employee, err := s.companyClient.GetEmployeeWithGracefulDegradation(txCtx, res.CompanyID, req.EmployeeID)
		switch {
		case err == nil:
			name = &employee.Name
			department = employee.Department
			position = employee.Position
		case errors.Is(err, companyClient.ErrEmployeeNotFound):
			return ErrEmployeeNotFound
		case errors.Is(err, companyClient.ErrServiceDegraded):
			s.logger.Warn("RegisterEmployee: CompanyService degraded, using request data for employee=%d", req.EmployeeID)
		default:
			return fmt.Errorf("%w: RegisterEmployee - company service error: %v", ErrInternal, err)
		}

		// 3. Занимаем слот
		slot.IsFilled = true
		slot.EmployeeID = &req.EmployeeID
		slot.EmployeeName = name
		slot.EmployeeDepartment = department
		slot.EmployeePosition = position

		res.SlotsFilled = res.FilledSlotCount()

		// 4. Сохраняем слоты целиком
		if err := s.reservationRepo.UpdateTimeSlots(txCtx, res.ID, res.TimeSlots, res.SlotsFilled); err != nil {
			return fmt.Errorf("%w: RegisterEmployee - update slots: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		s.logger.Warn("RegisterEmployee: failed for reservation=%d employee=%d: %v", reservationID, req.EmployeeID, err)
		return nil, err
	}

	s.logger.Info("RegisterEmployee: employee=%d registered in reservation=%d", req.EmployeeID, reservationID)
	return models.FromDomainReservation(result), nil
}

// UnregisterEmployee снимает сотрудника со слота
// Выполняется в сериализуемой транзакции по той же схеме, что и регистрация
func (s *Service) UnregisterEmployee(ctx context.Context, reservationID int64, slotNumber int) (*models.ReservationResponse, error) {
	s.logger.Info("UnregisterEmployee: reservation=%d slot=%d", reservationID, slotNumber)

	var result *domain.Reservation

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UnregisterEmployee - repository error: %v", ErrInternal, err)
		}

		slot := res.SlotByNumber(slotNumber)
		if slot == nil {
			return ErrSlotNotFound
		}
		if !slot.IsOccupied() {
			return ErrSlotEmpty
		}

		slot.ClearEmployee()
		res.SlotsFilled = res.FilledSlotCount()

		if err := s.reservationRepo.UpdateTimeSlots(txCtx, res.ID, res.TimeSlots, res.SlotsFilled); err != nil {
			return fmt.Errorf("%w: UnregisterEmployee - update slots: %v", ErrInternal, err)
		}

		result = res
		return nil
	})

	if err != nil {
		s.logger.Warn("UnregisterEmployee: failed for reservation=%d slot=%d: %v", reservationID, slotNumber, err)
		return nil, err
	}

	s.logger.Info("UnregisterEmployee: slot=%d freed in reservation=%d", slotNumber, reservationID)
	return models.FromDomainReservation(result), nil
}

// pickSlot выбирает слот для регистрации: указанный номер или первый свободный
func (s *Service) pickSlot(res *domain.Reservation, slotNumber *int) (*domain.TimeSlot, error) {
	if slotNumber != nil {
		slot := res.SlotByNumber(*slotNumber)
		if slot == nil {
			return nil, ErrSlotNotFound
		}
		if slot.IsOccupied() {
			return nil, ErrSlotAlreadyFilled
		}
		return slot, nil
	}

	for i := range res.TimeSlots {
		if !res.TimeSlots[i].IsOccupied() {
			return &res.TimeSlots[i], nil
		}
	}
	return nil, ErrReservationFull
}
