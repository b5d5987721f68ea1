package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-DispatchService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid assignment status")

	// ErrInvalidAction возвращается при некорректном действии в ответе на оффер
	ErrInvalidAction = errors.New("invalid response action")
)

// ResponseAction действие стаффа в ответ на оффер
type ResponseAction string

const (
	ActionAccept ResponseAction = "accept"
	ActionReject ResponseAction = "reject"
)

// Request модели

// RespondRequest ответ стаффа на оффер
type RespondRequest struct {
	StaffID int64  `json:"staffId"`
	Action  string `json:"action"`
	Notes   *string `json:"notes,omitempty"`
}

// ToAction конвертирует строку в типизированное действие
func (r *RespondRequest) ToAction() (ResponseAction, error) {
	switch ResponseAction(r.Action) {
	case ActionAccept, ActionReject:
		return ResponseAction(r.Action), nil
	default:
		return "", ErrInvalidAction
	}
}

// ListByStaffRequest запрос на получение ассайнов стаффа
type ListByStaffRequest struct {
	StaffID    int64   `json:"staffId"`
	Status     *string `json:"status,omitempty"`
	OnlyActive bool    `json:"onlyActive,omitempty"`
}

// Response модели

// AssignmentResponse ассайн в ответе API
type AssignmentResponse struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservationId"`
	StaffID       int64      `json:"staffId"`
	SlotNumber    *int       `json:"slotNumber,omitempty"`
	Status        string     `json:"status"`
	AssignedAt    time.Time  `json:"assignedAt"`
	ResponseAt    *time.Time `json:"responseAt,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// AssignmentListResponse список ассайнов
type AssignmentListResponse struct {
	Assignments []*AssignmentResponse `json:"assignments"`
	Total       int                   `json:"total"`
}

// Конвертеры domain <-> API моделей

// ToDomainAssignmentStatus конвертирует строку в domain статус
func ToDomainAssignmentStatus(status string) (domain.AssignmentStatus, error) {
	switch domain.AssignmentStatus(status) {
	case domain.AssignmentPending,
		domain.AssignmentConfirmed,
		domain.AssignmentCompleted,
		domain.AssignmentRejected,
		domain.AssignmentCancelled:
		return domain.AssignmentStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainAssignment конвертирует domain ассайн в API модель
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:            a.ID,
		ReservationID: a.ReservationID,
		StaffID:       a.StaffID,
		SlotNumber:    a.SlotNumber,
		Status:        string(a.Status),
		AssignedAt:    a.AssignedAt,
		ResponseAt:    a.ResponseAt,
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// FromDomainAssignmentList конвертирует список ассайнов в API модель
func FromDomainAssignmentList(assignments []*domain.Assignment) *AssignmentListResponse {
	result := make([]*AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		result = append(result, FromDomainAssignment(a))
	}
	return &AssignmentListResponse{
		Assignments: result,
		Total:       len(result),
	}
}
