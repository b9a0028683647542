package get_schedule

import (
	"github.com/m04kA/SMC-LaundryService/internal/domain"
	getSchedule "github.com/m04kA/SMC-LaundryService/internal/usecase/get_schedule"
)

// ScheduleResponse HTTP response model: двухнедельная сетка доступности
type ScheduleResponse struct {
	Today string         `json:"today"`
	Weeks []WeekResponse `json:"weeks"`
}

type WeekResponse struct {
	Week        string        `json:"week"`
	CurrentWeek bool          `json:"currentWeek"`
	Days        []DayResponse `json:"days"`
}

type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type SlotResponse struct {
	Slot     string            `json:"slot"`
	Free     int               `json:"free"`
	Machines []MachineResponse `json:"machines"`
}

type MachineResponse struct {
	Machine int    `json:"machine"`
	Room    string `json:"room,omitempty"`
	Free    bool   `json:"free"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Today: resp.Today.Format(domain.DateFormat),
		Weeks: make([]WeekResponse, 0, len(resp.Weeks)),
	}

	for _, week := range resp.Weeks {
		wr := WeekResponse{
			Week:        week.Week.String(),
			CurrentWeek: week.CurrentWeek,
			Days:        make([]DayResponse, 0, len(week.Days)),
		}
		for _, day := range week.Days {
			dr := DayResponse{
				Date:  day.Date.Format(domain.DateFormat),
				Slots: make([]SlotResponse, 0, len(day.Slots)),
			}
			for _, slot := range day.Slots {
				sr := SlotResponse{
					Slot:     slot.Slot.String(),
					Free:     slot.Free,
					Machines: make([]MachineResponse, 0, len(slot.Machines)),
				}
				for _, cell := range slot.Machines {
					sr.Machines = append(sr.Machines, MachineResponse{
						Machine: cell.Machine,
						Room:    cell.Room,
						Free:    !cell.Occupied(),
					})
				}
				dr.Slots = append(dr.Slots, sr)
			}
			wr.Days = append(wr.Days, dr)
		}
		out.Weeks = append(out.Weeks, wr)
	}

	return out
}
