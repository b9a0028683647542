package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Response двухнедельная сетка доступности: текущая ISO-неделя и следующая
type Response struct {
	Today time.Time
	Weeks []WeekSchedule
}

// WeekSchedule расписание одной недели, понедельник-воскресенье
type WeekSchedule struct {
	Week        domain.ISOWeek
	CurrentWeek bool
	Days        []DaySchedule
}

// DaySchedule все слоты одного дня
type DaySchedule struct {
	Date  time.Time
	Slots []SlotSchedule
}

// SlotSchedule занятость машин внутри одного (date, slot)
type SlotSchedule struct {
	Slot     domain.Slot
	Machines []MachineCell
	Free     int // сколько машин ещё свободно
}

// MachineCell одна машина: номер и занявшая её комната (пусто = свободна)
type MachineCell struct {
	Machine int
	Room    string
}

// Occupied сообщает, занята ли машина
func (c MachineCell) Occupied() bool {
	return c.Room != ""
}
