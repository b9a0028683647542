package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Request модель запроса на создание резервации
type Request struct {
	Room    string      // номер комнаты (строка: никогда не парсится как число)
	Date    time.Time   // день слота (без времени)
	Slot    domain.Slot // одна из четырёх фиксированных франшиз дня
	Machine int         // номер машины 1..3
}

// Response модель ответа с созданной резервацией
type Response struct {
	Room    string
	Date    time.Time
	Slot    domain.Slot
	Machine int

	// Неделя, в которую попала резервация, и признак текущей недели:
	// из них складывается сообщение пользователю о действующей квоте.
	Week        domain.ISOWeek
	CurrentWeek bool
}

func (r *Request) toBookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		Room:    r.Room,
		Date:    domain.NormalizeDate(r.Date),
		Slot:    r.Slot,
		Machine: r.Machine,
	}
}
