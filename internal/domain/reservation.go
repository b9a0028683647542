package domain

import "time"

// Reservation represents one occupied machine within a (date, slot) pair.
// A reservation is identified by its full field tuple; there is no synthetic ID.
type Reservation struct {
	Room    string
	Date    time.Time // normalized to midnight UTC
	Slot    Slot
	Machine int
}

// Equal reports whether two reservations refer to the same row.
func (r Reservation) Equal(other Reservation) bool {
	return r.Room == other.Room &&
		SameDate(r.Date, other.Date) &&
		r.Slot == other.Slot &&
		r.Machine == other.Machine
}

// BookingRequest is a fully resolved request to occupy one machine.
// The presentation layer parses all free text before constructing it.
type BookingRequest struct {
	Room    string
	Date    time.Time
	Slot    Slot
	Machine int
}

// CancellationRequest removes the reservation matching all four fields exactly.
type CancellationRequest struct {
	Room    string
	Date    time.Time
	Slot    Slot
	Machine int
}

// Reservation returns the reservation row a booking request would create.
func (r BookingRequest) Reservation() Reservation {
	return Reservation{
		Room:    r.Room,
		Date:    NormalizeDate(r.Date),
		Slot:    r.Slot,
		Machine: r.Machine,
	}
}

// Reservation returns the reservation row a cancellation request targets.
func (r CancellationRequest) Reservation() Reservation {
	return Reservation{
		Room:    r.Room,
		Date:    NormalizeDate(r.Date),
		Slot:    r.Slot,
		Machine: r.Machine,
	}
}

// NormalizeDate strips the time-of-day component and pins the date to UTC,
// so reservations loaded from different sources compare by calendar day only.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two instants fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
