package assignments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/capacity"
	"github.com/m04kA/SMC-DispatchService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/assignment"
	reservationRepo "github.com/m04kA/SMC-DispatchService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-DispatchService/internal/service/assignments/models"
)

// Service сервис для работы с ассайнами
type Service struct {
	assignmentRepo  AssignmentRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	enforceCapacity bool
	logger          Logger
}

// NewService создает новый экземпляр сервиса ассайнов
// enforceCapacity включает блокировку акцепта при превышении вместимости
func NewService(
	assignmentRepo AssignmentRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	enforceCapacity bool,
	logger Logger,
) *Service {
	return &Service{
		assignmentRepo:  assignmentRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		enforceCapacity: enforceCapacity,
		logger:          logger,
	}
}

// ListByReservation получает все ассайны предложения
func (s *Service) ListByReservation(ctx context.Context, reservationID int64) (*models.AssignmentListResponse, error) {
	s.logger.Info("ListByReservation: fetching assignments for reservation=%d", reservationID)

	// Предложение должно существовать
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.assignmentRepo.GetByFilter(ctx, domain.AssignmentFilter{ReservationID: &reservationID})
	if err != nil {
		s.logger.Error("ListByReservation: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ListByReservation - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignmentList(assignments), nil
}

// ListByStaff получает ассайны стаффа с опциональной фильтрацией по статусу
func (s *Service) ListByStaff(ctx context.Context, req *models.ListByStaffRequest) (*models.AssignmentListResponse, error) {
	s.logger.Info("ListByStaff: fetching assignments for staff=%d status=%v", req.StaffID, req.Status)

	filter := domain.AssignmentFilter{
		StaffID:    &req.StaffID,
		OnlyActive: req.OnlyActive,
	}
	if req.Status != nil {
		status, err := models.ToDomainAssignmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	assignments, err := s.assignmentRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByStaff: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: ListByStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignmentList(assignments), nil
}

// Respond обрабатывает ответ стаффа на оффер (accept или reject)
// Ответить можно только на pending-оффер и только на свой
//
// Выполняется в сериализуемой транзакции: ассайн блокируется через
// FOR UPDATE, повторный ответ получит ErrInvalidState
func (s *Service) Respond(ctx context.Context, assignmentID int64, req *models.RespondRequest) (*models.AssignmentResponse, error) {
	s.logger.Info("Respond: assignment=%d staff=%d action=%s", assignmentID, req.StaffID, req.Action)

	action, err := req.ToAction()
	if err != nil {
		return nil, fmt.Errorf("%w: action must be accept or reject", ErrInvalidInput)
	}

	var result *domain.Assignment

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := s.assignmentRepo.GetByID(txCtx, assignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
		}

		if a.StaffID != req.StaffID {
			return ErrAccessDenied
		}
		if !a.CanRespond() {
			return ErrInvalidState
		}

		newStatus := domain.AssignmentRejected
		if action == models.ActionAccept {
			newStatus = domain.AssignmentConfirmed

			// Контроль вместимости при акцепте (если включен)
			if s.enforceCapacity {
				if err := s.checkCapacity(txCtx, a.ReservationID); err != nil {
					return err
				}
			}
		}

		now := s.timeProvider.Now()
		if err := s.assignmentRepo.UpdateStatus(txCtx, a.ID, newStatus, sql.NullTime{Time: now, Valid: true}); err != nil {
			return fmt.Errorf("%w: Respond - update status: %v", ErrInternal, err)
		}

		a.Status = newStatus
		a.ResponseAt = &now
		result = a
		return nil
	})

	if err != nil {
		s.logger.Warn("Respond: failed for assignment=%d staff=%d: %v", assignmentID, req.StaffID, err)
		return nil, err
	}

	s.logger.Info("Respond: assignment=%d now %s", assignmentID, result.Status)
	return models.FromDomainAssignment(result), nil
}

// Confirm административно подтверждает ассайн, минуя ответ стаффа
// В отличие от Respond не проверяет текущий статус
func (s *Service) Confirm(ctx context.Context, assignmentID int64) (*models.AssignmentResponse, error) {
	return s.adminSetStatus(ctx, assignmentID, domain.AssignmentConfirmed)
}

// Complete отмечает ассайн отработанным
func (s *Service) Complete(ctx context.Context, assignmentID int64) (*models.AssignmentResponse, error) {
	return s.adminSetStatus(ctx, assignmentID, domain.AssignmentCompleted)
}

// Delete удаляет ассайн (административная операция, любой статус)
func (s *Service) Delete(ctx context.Context, assignmentID int64) error {
	s.logger.Info("Delete: deleting assignment=%d", assignmentID)

	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("Delete: assignment=%d not found", assignmentID)
			return ErrAssignmentNotFound
		}
		s.logger.Error("Delete: repository error for assignment=%d: %v", assignmentID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: assignment=%d deleted", assignmentID)
	return nil
}

func (s *Service) adminSetStatus(ctx context.Context, assignmentID int64, status domain.AssignmentStatus) (*models.AssignmentResponse, error) {
	s.logger.Info("adminSetStatus: assignment=%d -> %s", assignmentID, status)

	var result *domain.Assignment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		a, err := s.assignmentRepo.GetByID(txCtx, assignmentID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				return ErrAssignmentNotFound
			}
			return fmt.Errorf("%w: adminSetStatus - repository error: %v", ErrInternal, err)
		}

		if err := s.assignmentRepo.UpdateStatus(txCtx, a.ID, status, sql.NullTime{}); err != nil {
			return fmt.Errorf("%w: adminSetStatus - update status: %v", ErrInternal, err)
		}

		a.Status = status
		result = a
		return nil
	})

	if err != nil {
		s.logger.Warn("adminSetStatus: failed for assignment=%d: %v", assignmentID, err)
		return nil, err
	}

	return models.FromDomainAssignment(result), nil
}

// checkCapacity проверяет, что акцепт не превысит заявленную вместимость
// Вызывается внутри транзакции - предложение и ассайны блокируются FOR UPDATE
func (s *Service) checkCapacity(ctx context.Context, reservationID int64) error {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("%w: checkCapacity - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.assignmentRepo.GetByFilter(ctx, domain.AssignmentFilter{ReservationID: &reservationID})
	if err != nil {
		return fmt.Errorf("%w: checkCapacity - assignments error: %v", ErrInternal, err)
	}

	list := make([]domain.Assignment, 0, len(assignments))
	for _, a := range assignments {
		list = append(list, *a)
	}

	summary := capacity.Summarize(res, list)
	if summary.EmployeeFilledCount+summary.ConfirmedCount+summary.CompletedCount+1 > res.MaxParticipants {
		s.logger.Warn("checkCapacity: accept would exceed capacity for reservation=%d (max=%d)", reservationID, res.MaxParticipants)
		return ErrCapacityExceeded
	}

	return nil
}
