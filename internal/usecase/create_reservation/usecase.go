package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
	companyClient "github.com/m04kA/SMC-DispatchService/internal/integrations/companyservice"
	"github.com/m04kA/SMC-DispatchService/internal/timeplan"
)

// UseCase use case для создания предложения
type UseCase struct {
	reservationRepo ReservationRepository
	companyClient   CompanyServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	companyClient CompanyServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		companyClient:   companyClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания предложения
// Окно нарезается на слоты один раз при создании; слоты хранятся
// вместе с предложением и дальше меняются только регистрациями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: company=%d office=%s date=%s window=%s-%s",
		req.CompanyID, req.OfficeName, req.ReservationDate.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата выезда не должна быть в прошлом
	if err := validateDate(req.ReservationDate, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: date %s is in the past", req.ReservationDate.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем компанию и проверяем активность контракта
	company, err := uc.companyClient.GetCompany(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companyClient.ErrCompanyNotFound) {
			uc.logger.Warn("CreateReservation: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("CreateReservation: failed to get company id=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	if !company.IsActive {
		uc.logger.Warn("CreateReservation: company id=%d contract is not active", req.CompanyID)
		return nil, ErrCompanyInactive
	}

	// 4. Нарезаем окно на слоты с учетом заявленной вместимости
	plan, err := timeplan.PlanLimited(req.StartTime, req.EndTime, req.ServiceDuration, req.BreakDuration, req.MaxParticipants)
	if err != nil {
		uc.logger.Warn("CreateReservation: planning failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !plan.Feasible {
		uc.logger.Warn("CreateReservation: window too short (need %d minutes, have %d)",
			plan.Shortfall.RequiredMinutes, plan.Shortfall.AvailableMinutes)
		return nil, fmt.Errorf("%w: need %d minutes, have %d",
			ErrWindowTooShort, plan.Shortfall.RequiredMinutes, plan.Shortfall.AvailableMinutes)
	}

	// 5. Создаем предложение в статусе набора участников
	reservation := &domain.Reservation{
		CompanyID:           req.CompanyID,
		OfficeName:          req.OfficeName,
		OfficeAddress:       req.OfficeAddress,
		ReservationDate:     req.ReservationDate,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		ApplicationDeadline: req.ApplicationDeadline,
		MaxParticipants:     req.MaxParticipants,
		TotalDuration:       plan.TotalMinutes,
		ServiceDuration:     req.ServiceDuration,
		BreakDuration:       req.BreakDuration,
		SlotCount:           plan.SlotCount,
		TimeSlots:           plan.Slots,
		SlotsFilled:         0,
		HourlyRate:          req.HourlyRate,
		Status:              domain.StatusRecruiting,
		Notes:               req.Notes,
		Requirements:        req.Requirements,
	}

	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	_, totalEarnings := plan.Earnings(req.HourlyRate)

	uc.logger.Info("CreateReservation: created reservation id=%d with %d slots", created.ID, created.SlotCount)

	return &Response{
		ID:              created.ID,
		CompanyID:       created.CompanyID,
		OfficeName:      created.OfficeName,
		ReservationDate: created.ReservationDate,
		StartTime:       created.StartTime,
		EndTime:         created.EndTime,
		MaxParticipants: created.MaxParticipants,
		TotalDuration:   created.TotalDuration,
		ServiceDuration: created.ServiceDuration,
		BreakDuration:   created.BreakDuration,
		SlotCount:       created.SlotCount,
		TimeSlots:       created.TimeSlots,
		HourlyRate:      created.HourlyRate,
		TotalEarnings:   totalEarnings,
		Status:          string(created.Status),
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}
