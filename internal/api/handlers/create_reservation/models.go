package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	createReservation "github.com/m04kA/SMC-LaundryService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Room    string `json:"room"`
	Date    string `json:"date"` // "2024-06-03"
	Slot    string `json:"slot"` // "08-12" | "12-16" | "16-20" | "20-00"
	Machine int    `json:"machine"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Room        string `json:"room"`
	Date        string `json:"date"`
	Slot        string `json:"slot"`
	Machine     int    `json:"machine"`
	Week        string `json:"week"`
	CurrentWeek bool   `json:"currentWeek"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	slot, err := domain.ParseSlot(r.Slot)
	if err != nil {
		return nil, fmt.Errorf("parse slot: %w", err)
	}

	return &createReservation.Request{
		Room:    r.Room,
		Date:    date,
		Slot:    slot,
		Machine: r.Machine,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		Room:        resp.Room,
		Date:        resp.Date.Format(domain.DateFormat),
		Slot:        resp.Slot.String(),
		Machine:     resp.Machine,
		Week:        resp.Week.String(),
		CurrentWeek: resp.CurrentWeek,
	}
}
