package create_offer

import (
	"time"

	createOffer "github.com/m04kA/SMC-DispatchService/internal/usecase/create_offer"
)

// CreateOfferRequest HTTP request model
// slotNumber обязателен только в слотовом режиме распределения
type CreateOfferRequest struct {
	StaffID    int64   `json:"staffId"`
	SlotNumber *int    `json:"slotNumber,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// OfferResponse HTTP response model
type OfferResponse struct {
	ID            int64   `json:"id"`
	ReservationID int64   `json:"reservationId"`
	StaffID       int64   `json:"staffId"`
	SlotNumber    *int    `json:"slotNumber,omitempty"`
	Status        string  `json:"status"`
	AssignedAt    string  `json:"assignedAt"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOfferRequest) ToUseCaseRequest(reservationID int64) *createOffer.Request {
	return &createOffer.Request{
		ReservationID: reservationID,
		StaffID:       r.StaffID,
		SlotNumber:    r.SlotNumber,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOffer.Response) *OfferResponse {
	return &OfferResponse{
		ID:            resp.ID,
		ReservationID: resp.ReservationID,
		StaffID:       resp.StaffID,
		SlotNumber:    resp.SlotNumber,
		Status:        resp.Status,
		AssignedAt:    resp.AssignedAt.Format(time.RFC3339),
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
