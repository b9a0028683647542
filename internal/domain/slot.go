package domain

import "fmt"

// Slot is one of the four fixed daily time ranges machines can be reserved in.
// The 00-08 range is deliberately absent: it is permanently free and never
// represented in the store.
type Slot string

const (
	SlotMorning Slot = "08-12"
	SlotMidday  Slot = "12-16"
	SlotEvening Slot = "16-20"
	SlotNight   Slot = "20-00"
)

// Slots returns all reservable slots in chronological order.
func Slots() []Slot {
	return []Slot{SlotMorning, SlotMidday, SlotEvening, SlotNight}
}

// Valid reports whether s is one of the four reservable slots.
func (s Slot) Valid() bool {
	switch s {
	case SlotMorning, SlotMidday, SlotEvening, SlotNight:
		return true
	}
	return false
}

func (s Slot) String() string {
	return string(s)
}

// ParseSlot converts the wire representation (e.g. "08-12") into a Slot.
func ParseSlot(value string) (Slot, error) {
	s := Slot(value)
	if !s.Valid() {
		return "", fmt.Errorf("unknown slot %q", value)
	}
	return s, nil
}
