package cancel_reservation

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Request модель запроса на отмену резервации. Совпадение всегда точное по
// всем четырём полям: номер машины подставляет администратор.
type Request struct {
	Room    string
	Date    time.Time
	Slot    domain.Slot
	Machine int
}

// Response модель ответа с удалённой резервацией
type Response struct {
	Room    string
	Date    time.Time
	Slot    domain.Slot
	Machine int
}

func (r *Request) toCancellationRequest() domain.CancellationRequest {
	return domain.CancellationRequest{
		Room:    r.Room,
		Date:    domain.NormalizeDate(r.Date),
		Slot:    r.Slot,
		Machine: r.Machine,
	}
}
