package models

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ListRequest фильтр списка резерваций. Все поля опциональны; nil означает
// отсутствие ограничения по этому полю.
type ListRequest struct {
	Room *string
	Date *time.Time
	Week *domain.ISOWeek
}

// ReservationView представление одной резервации для отдачи наружу
type ReservationView struct {
	Room    string
	Date    time.Time
	Slot    domain.Slot
	Machine int
	Week    domain.ISOWeek
}

// ListResponse список резерваций в порядке хранилища
type ListResponse struct {
	Reservations []ReservationView
	Total        int
}

// FromDomain конвертирует доменную резервацию в представление
func FromDomain(res domain.Reservation) ReservationView {
	return ReservationView{
		Room:    res.Room,
		Date:    res.Date,
		Slot:    res.Slot,
		Machine: res.Machine,
		Week:    domain.ISOWeekOf(res.Date),
	}
}

// FromDomainList конвертирует снапшот в ответ списка
func FromDomainList(snap domain.Snapshot) *ListResponse {
	views := make([]ReservationView, 0, len(snap))
	for _, res := range snap {
		views = append(views, FromDomain(res))
	}
	return &ListResponse{
		Reservations: views,
		Total:        len(views),
	}
}
