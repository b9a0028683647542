package list_reservations

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/internal/service/reservations/models"
)

// ReservationResponse представление одной резервации в ответе API
type ReservationResponse struct {
	Room    string `json:"room"`
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Machine int    `json:"machine"`
	Week    string `json:"week"`
}

// ListReservationsResponse ответ на запрос списка резерваций
type ListReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// ToServiceRequest формирует фильтр списка из query параметров.
// week задается параметрами week и year вместе; год обязателен, чтобы
// номер недели не перепутался на границе ISO-года.
func ToServiceRequest(roomStr, dateStr, weekStr, yearStr string) (*models.ListRequest, error) {
	req := &models.ListRequest{}

	if roomStr != "" {
		req.Room = &roomStr
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		date = domain.NormalizeDate(date)
		req.Date = &date
	}

	if weekStr != "" || yearStr != "" {
		week, err := strconv.Atoi(weekStr)
		if err != nil {
			return nil, err
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, err
		}
		req.Week = &domain.ISOWeek{Year: year, Week: week}
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в ответ API
func FromServiceResponse(resp *models.ListResponse) ListReservationsResponse {
	items := make([]ReservationResponse, 0, len(resp.Reservations))
	for _, res := range resp.Reservations {
		items = append(items, ReservationResponse{
			Room:    res.Room,
			Date:    res.Date.Format(domain.DateFormat),
			Slot:    res.Slot.String(),
			Machine: res.Machine,
			Week:    res.Week.String(),
		})
	}
	return ListReservationsResponse{
		Reservations: items,
		Total:        resp.Total,
	}
}
