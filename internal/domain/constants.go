package domain

// Capacity constants
const (
	// MachinesPerSlot is the number of physical washers within one (date, slot).
	MachinesPerSlot = 3

	// MinMachine and MaxMachine bound the machine index.
	MinMachine = 1
	MaxMachine = 3

	// OfferedDays is the size of the booking window: the current ISO week
	// plus the following one.
	OfferedDays = 14
)

// Weekly quota constants
const (
	// QuotaDefault is the number of distinct slots a room may hold in a week.
	QuotaDefault = 1

	// QuotaCurrentWeek is the relaxed quota for the ISO week containing
	// today (the catch-up exception).
	QuotaCurrentWeek = 2

	// RoomMachinesPerSlotDefault limits a single room to one machine per slot.
	RoomMachinesPerSlotDefault = 1

	// RoomMachinesPerSlotCurrentWeek allows a second machine in one slot
	// during the current week.
	RoomMachinesPerSlotCurrentWeek = 2
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
