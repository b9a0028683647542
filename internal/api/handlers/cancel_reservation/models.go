package cancel_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	cancelReservation "github.com/m04kA/SMC-LaundryService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model. Машина указывается явно:
// административная отмена всегда адресует точную строку.
type CancelReservationRequest struct {
	Room    string `json:"room"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Machine int    `json:"machine"`
}

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	Room    string `json:"room"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Machine int    `json:"machine"`
	Deleted bool   `json:"deleted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest() (*cancelReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	slot, err := domain.ParseSlot(r.Slot)
	if err != nil {
		return nil, fmt.Errorf("parse slot: %w", err)
	}

	return &cancelReservation.Request{
		Room:    r.Room,
		Date:    date,
		Slot:    slot,
		Machine: r.Machine,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelReservationResponse {
	return &CancelReservationResponse{
		Room:    resp.Room,
		Date:    resp.Date.Format(domain.DateFormat),
		Slot:    resp.Slot.String(),
		Machine: resp.Machine,
		Deleted: true,
	}
}
