package get_schedule

import (
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// buildDay собирает ячейки всех слотов одного дня из снапшота
func buildDay(snap domain.Snapshot, date time.Time) DaySchedule {
	day := DaySchedule{
		Date:  date,
		Slots: make([]SlotSchedule, 0, len(domain.Slots())),
	}

	for _, slot := range domain.Slots() {
		day.Slots = append(day.Slots, buildSlot(snap, date, slot))
	}

	return day
}

func buildSlot(snap domain.Snapshot, date time.Time, slot domain.Slot) SlotSchedule {
	ss := SlotSchedule{
		Slot:     slot,
		Machines: make([]MachineCell, 0, domain.MachinesPerSlot),
	}

	for machine := domain.MinMachine; machine <= domain.MaxMachine; machine++ {
		cell := MachineCell{Machine: machine}
		for _, res := range snap {
			if res.Machine == machine && res.Slot == slot && domain.SameDate(res.Date, date) {
				cell.Room = res.Room
				break
			}
		}
		if !cell.Occupied() {
			ss.Free++
		}
		ss.Machines = append(ss.Machines, cell)
	}

	return ss
}
