package domain

import "time"

// Snapshot is an immutable, consistent view of all reservations at a point in
// time. Query helpers never mutate the receiver; Apply returns a fresh slice.
type Snapshot []Reservation

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}

// SlotCount returns the number of machines occupied within one (date, slot).
func (s Snapshot) SlotCount(date time.Time, slot Slot) int {
	count := 0
	for _, r := range s {
		if r.Slot == slot && SameDate(r.Date, date) {
			count++
		}
	}
	return count
}

// RoomMachinesInSlot returns how many machines one room holds within one
// (date, slot). The current-week exception allows this to reach 2.
func (s Snapshot) RoomMachinesInSlot(room string, date time.Time, slot Slot) int {
	count := 0
	for _, r := range s {
		if r.Room == room && r.Slot == slot && SameDate(r.Date, date) {
			count++
		}
	}
	return count
}

// MachineTaken reports whether the exact (date, slot, machine) triple is held.
func (s Snapshot) MachineTaken(date time.Time, slot Slot, machine int) bool {
	for _, r := range s {
		if r.Machine == machine && r.Slot == slot && SameDate(r.Date, date) {
			return true
		}
	}
	return false
}

// DistinctRoomSlots counts the distinct (date, slot) pairs a room holds with
// dates inside the given ISO week. Two machines in one slot count once; the
// weekly quota is evaluated per slot held, not per reservation row.
func (s Snapshot) DistinctRoomSlots(room string, week ISOWeek) int {
	type slotKey struct {
		date time.Time
		slot Slot
	}
	seen := make(map[slotKey]struct{})
	for _, r := range s {
		if r.Room != room || ISOWeekOf(r.Date) != week {
			continue
		}
		seen[slotKey{date: NormalizeDate(r.Date), slot: r.Slot}] = struct{}{}
	}
	return len(seen)
}

// IndexOf returns the position of the first reservation equal to res, or -1.
func (s Snapshot) IndexOf(res Reservation) int {
	for i, r := range s {
		if r.Equal(res) {
			return i
		}
	}
	return -1
}

// Contains reports whether res is present in the snapshot.
func (s Snapshot) Contains(res Reservation) bool {
	return s.IndexOf(res) >= 0
}

// Apply returns a new snapshot with the mutation applied. The caller is
// responsible for having run the mutation's predicate first; deleting an
// absent row is a no-op.
func (s Snapshot) Apply(m Mutation) Snapshot {
	switch m.Op {
	case OpInsert:
		out := make(Snapshot, 0, len(s)+1)
		out = append(out, s...)
		return append(out, m.Reservation)
	case OpDelete:
		i := s.IndexOf(m.Reservation)
		if i < 0 {
			return s.Clone()
		}
		out := make(Snapshot, 0, len(s)-1)
		out = append(out, s[:i]...)
		return append(out, s[i+1:]...)
	}
	return s.Clone()
}
