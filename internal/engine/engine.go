// Package engine holds the allocation decision logic: pure functions of
// (snapshot, request, today) with no hidden state and no I/O. The same
// predicates run twice per request: once against the caller's snapshot for
// fast diagnostics, and once inside Store.Commit against the latest committed
// state, which is what actually guards the invariants.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// EvaluateBooking decides whether the booking is legal against the snapshot.
// On success it returns the snapshot with the new reservation appended; the
// input snapshot is never modified.
func EvaluateBooking(snap domain.Snapshot, req domain.BookingRequest, today time.Time) (domain.Snapshot, error) {
	if err := checkBooking(snap, req, today); err != nil {
		return nil, err
	}
	return snap.Apply(domain.Mutation{Op: domain.OpInsert, Reservation: req.Reservation()}), nil
}

// EvaluateCancellation decides whether the cancellation matches an existing
// reservation and returns the snapshot without it. Cancellation is never
// subject to quota checks; it only ever relaxes constraints.
func EvaluateCancellation(snap domain.Snapshot, req domain.CancellationRequest) (domain.Snapshot, error) {
	if err := checkCancellation(snap, req); err != nil {
		return nil, err
	}
	return snap.Apply(domain.Mutation{Op: domain.OpDelete, Reservation: req.Reservation()}), nil
}

// BookingMutation packages the booking and its legality predicate for
// Store.Commit. The predicate closes over the request and today's date, so
// the store can re-validate against whatever state is current at commit time.
func BookingMutation(req domain.BookingRequest, today time.Time) domain.Mutation {
	return domain.Mutation{
		Op:          domain.OpInsert,
		Reservation: req.Reservation(),
		Predicate: func(snap domain.Snapshot) error {
			return checkBooking(snap, req, today)
		},
	}
}

// CancellationMutation packages the cancellation for Store.Commit.
func CancellationMutation(req domain.CancellationRequest) domain.Mutation {
	return domain.Mutation{
		Op:          domain.OpDelete,
		Reservation: req.Reservation(),
		Predicate: func(snap domain.Snapshot) error {
			return checkCancellation(snap, req)
		},
	}
}

// checkBooking runs the decision algorithm in its specified order,
// short-circuiting on the first failure. Quota and per-slot-limit checks come
// before the machine/capacity checks so a quota-exceeded room is told so even
// when the machine it picked also happens to be free.
func checkBooking(snap domain.Snapshot, req domain.BookingRequest, today time.Time) error {
	if err := validateShape(req.Room, req.Slot, req.Machine); err != nil {
		return err
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !domain.IsOfferedDate(req.Date, today) {
		return fmt.Errorf("%w: %s", ErrDateNotOffered, req.Date.Format(domain.DateFormat))
	}

	targetWeek := domain.ISOWeekOf(req.Date)
	currentWeek := domain.ISOWeekOf(today)

	quota := domain.QuotaDefault
	machinesPerRoom := domain.RoomMachinesPerSlotDefault
	if targetWeek == currentWeek {
		quota = domain.QuotaCurrentWeek
		machinesPerRoom = domain.RoomMachinesPerSlotCurrentWeek
	}

	held := snap.RoomMachinesInSlot(req.Room, req.Date, req.Slot)
	if held == 0 {
		// Booking a slot the room does not hold yet counts against the
		// weekly quota of distinct slots.
		if slots := snap.DistinctRoomSlots(req.Room, targetWeek); slots >= quota {
			return fmt.Errorf("%w: room %s already holds %d slot(s) in week %s",
				ErrWeeklyQuotaExceeded, req.Room, slots, targetWeek)
		}
	} else if held >= machinesPerRoom {
		// A second machine in an already-held slot is only allowed in the
		// current week, and never a third.
		return fmt.Errorf("%w: room %s already holds %d machine(s) in %s %s",
			ErrSlotMachineLimitExceeded, req.Room, held, req.Date.Format(domain.DateFormat), req.Slot)
	}

	if snap.MachineTaken(req.Date, req.Slot, req.Machine) {
		return fmt.Errorf("%w: machine %d in %s %s",
			ErrMachineAlreadyBooked, req.Machine, req.Date.Format(domain.DateFormat), req.Slot)
	}
	if snap.SlotCount(req.Date, req.Slot) >= domain.MachinesPerSlot {
		return fmt.Errorf("%w: %s %s", ErrSlotFull, req.Date.Format(domain.DateFormat), req.Slot)
	}

	return nil
}

func checkCancellation(snap domain.Snapshot, req domain.CancellationRequest) error {
	if err := validateShape(req.Room, req.Slot, req.Machine); err != nil {
		return err
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !snap.Contains(req.Reservation()) {
		return fmt.Errorf("%w: room %s, %s %s, machine %d",
			ErrNotFound, req.Room, req.Date.Format(domain.DateFormat), req.Slot, req.Machine)
	}
	return nil
}

func validateShape(room string, slot domain.Slot, machine int) error {
	if strings.TrimSpace(room) == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if !slot.Valid() {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, slot)
	}
	if machine < domain.MinMachine || machine > domain.MaxMachine {
		return fmt.Errorf("%w: machine must be between %d and %d",
			ErrInvalidInput, domain.MinMachine, domain.MaxMachine)
	}
	return nil
}
