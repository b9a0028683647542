package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// Fixed clock: Monday 2025-09-01, ISO week 2025-W36.
var today = time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return today.AddDate(0, 0, offset)
}

func booking(room string, date time.Time, slot domain.Slot, machine int) domain.BookingRequest {
	return domain.BookingRequest{Room: room, Date: date, Slot: slot, Machine: machine}
}

func cancellation(room string, date time.Time, slot domain.Slot, machine int) domain.CancellationRequest {
	return domain.CancellationRequest{Room: room, Date: date, Slot: slot, Machine: machine}
}

func reserved(room string, date time.Time, slot domain.Slot, machine int) domain.Reservation {
	return domain.Reservation{Room: room, Date: date, Slot: slot, Machine: machine}
}

func TestEvaluateBooking_EmptySnapshot(t *testing.T) {
	next, err := EvaluateBooking(nil, booking("101", day(2), domain.SlotMorning, 1), today)

	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.True(t, next.Contains(reserved("101", day(2), domain.SlotMorning, 1)))
}

func TestEvaluateBooking_InvalidShape(t *testing.T) {
	cases := []struct {
		name string
		req  domain.BookingRequest
	}{
		{"empty room", booking("", day(0), domain.SlotMorning, 1)},
		{"blank room", booking("   ", day(0), domain.SlotMorning, 1)},
		{"unknown slot", booking("101", day(0), domain.Slot("07-11"), 1)},
		{"machine too low", booking("101", day(0), domain.SlotMorning, 0)},
		{"machine too high", booking("101", day(0), domain.SlotMorning, 4)},
		{"zero date", booking("101", time.Time{}, domain.SlotMorning, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EvaluateBooking(nil, tc.req, today)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

// TestEvaluateBooking_DateWindow verifies the 14-day booking window: the full
// ISO week containing today plus the following week, nothing outside it.
func TestEvaluateBooking_DateWindow(t *testing.T) {
	// First and last offered days.
	_, err := EvaluateBooking(nil, booking("101", day(0), domain.SlotMorning, 1), today)
	assert.NoError(t, err)
	_, err = EvaluateBooking(nil, booking("101", day(13), domain.SlotMorning, 1), today)
	assert.NoError(t, err)

	// One day either side.
	_, err = EvaluateBooking(nil, booking("101", day(-1), domain.SlotMorning, 1), today)
	assert.ErrorIs(t, err, ErrDateNotOffered)
	_, err = EvaluateBooking(nil, booking("101", day(14), domain.SlotMorning, 1), today)
	assert.ErrorIs(t, err, ErrDateNotOffered)
}

// TestEvaluateBooking_WeeklyQuota_CurrentWeek verifies the current-week quota
// of two distinct slots per room.
func TestEvaluateBooking_WeeklyQuota_CurrentWeek(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(0), domain.SlotMorning, 1),
		reserved("101", day(2), domain.SlotEvening, 1),
	}

	// Third distinct slot in the current week is over quota.
	_, err := EvaluateBooking(snap, booking("101", day(4), domain.SlotNight, 1), today)
	assert.ErrorIs(t, err, ErrWeeklyQuotaExceeded)

	// Другая комната квотой 101-й не ограничена.
	_, err = EvaluateBooking(snap, booking("102", day(4), domain.SlotNight, 1), today)
	assert.NoError(t, err)
}

// TestEvaluateBooking_WeeklyQuota_NextWeek verifies that only one distinct
// slot per room is allowed outside the current week.
func TestEvaluateBooking_WeeklyQuota_NextWeek(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(7), domain.SlotMorning, 1),
	}

	_, err := EvaluateBooking(snap, booking("101", day(9), domain.SlotEvening, 1), today)
	assert.ErrorIs(t, err, ErrWeeklyQuotaExceeded)

	// Quotas are per week: the same room may still book in the current week.
	_, err = EvaluateBooking(snap, booking("101", day(2), domain.SlotEvening, 1), today)
	assert.NoError(t, err)
}

// TestEvaluateBooking_SecondMachineSameSlot verifies the catch-up exception:
// a second machine in an already-held slot is legal only in the current week.
func TestEvaluateBooking_SecondMachineSameSlot(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(0), domain.SlotMorning, 1),
	}

	// Current week: second machine in the same slot is allowed.
	next, err := EvaluateBooking(snap, booking("101", day(0), domain.SlotMorning, 2), today)
	require.NoError(t, err)

	// A third machine in the same slot never is.
	_, err = EvaluateBooking(next, booking("101", day(0), domain.SlotMorning, 3), today)
	assert.ErrorIs(t, err, ErrSlotMachineLimitExceeded)

	// Next week: the second machine is already over the limit.
	nextWeek := domain.Snapshot{
		reserved("101", day(7), domain.SlotMorning, 1),
	}
	_, err = EvaluateBooking(nextWeek, booking("101", day(7), domain.SlotMorning, 2), today)
	assert.ErrorIs(t, err, ErrSlotMachineLimitExceeded)
}

// TestEvaluateBooking_QuotaPerSlotHeld verifies that two machine-rows in one
// slot consume a single quota unit, so the room may still take its second
// distinct slot in the current week.
func TestEvaluateBooking_QuotaPerSlotHeld(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(0), domain.SlotMorning, 1),
		reserved("101", day(0), domain.SlotMorning, 2),
	}

	_, err := EvaluateBooking(snap, booking("101", day(2), domain.SlotEvening, 1), today)
	assert.NoError(t, err)
}

func TestEvaluateBooking_MachineAlreadyBooked(t *testing.T) {
	snap := domain.Snapshot{
		reserved("102", day(0), domain.SlotMorning, 1),
	}

	_, err := EvaluateBooking(snap, booking("101", day(0), domain.SlotMorning, 1), today)
	assert.ErrorIs(t, err, ErrMachineAlreadyBooked)

	// Same machine number in a different slot is fine.
	_, err = EvaluateBooking(snap, booking("101", day(0), domain.SlotEvening, 1), today)
	assert.NoError(t, err)
}

// TestEvaluateBooking_SlotFull verifies the hard capacity of three machines
// per (date, slot).
func TestEvaluateBooking_SlotFull(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(0), domain.SlotMorning, 1),
		reserved("102", day(0), domain.SlotMorning, 2),
		reserved("103", day(0), domain.SlotMorning, 3),
	}

	for machine := 1; machine <= 3; machine++ {
		_, err := EvaluateBooking(snap, booking("104", day(0), domain.SlotMorning, machine), today)
		assert.Error(t, err, "machine %d", machine)
	}
}

// TestEvaluateBooking_CheckOrder verifies that quota rejection takes
// precedence over machine availability: a quota-exceeded room is told so even
// when the machine it picked is free.
func TestEvaluateBooking_CheckOrder(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(7), domain.SlotMorning, 1),
	}

	// Machine 2 in the evening slot is free, but the room is over its
	// next-week quota.
	_, err := EvaluateBooking(snap, booking("101", day(9), domain.SlotEvening, 2), today)
	assert.ErrorIs(t, err, ErrWeeklyQuotaExceeded)
}

func TestEvaluateCancellation_ExactMatch(t *testing.T) {
	target := reserved("101", day(0), domain.SlotMorning, 1)
	sibling := reserved("101", day(0), domain.SlotMorning, 2)
	snap := domain.Snapshot{target, sibling}

	next, err := EvaluateCancellation(snap, cancellation("101", day(0), domain.SlotMorning, 1))

	require.NoError(t, err)
	require.Len(t, next, 1)
	assert.False(t, next.Contains(target))
	assert.True(t, next.Contains(sibling), "the remaining machine row must be untouched")
}

func TestEvaluateCancellation_NotFound(t *testing.T) {
	snap := domain.Snapshot{
		reserved("101", day(0), domain.SlotMorning, 1),
	}

	cases := []domain.CancellationRequest{
		cancellation("102", day(0), domain.SlotMorning, 1), // wrong room
		cancellation("101", day(1), domain.SlotMorning, 1), // wrong date
		cancellation("101", day(0), domain.SlotEvening, 1), // wrong slot
		cancellation("101", day(0), domain.SlotMorning, 2), // wrong machine
	}

	for _, req := range cases {
		_, err := EvaluateCancellation(snap, req)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	// Прошедшие даты отменяются без оглядки на окно бронирования.
	past := domain.Snapshot{reserved("101", day(-30), domain.SlotMorning, 1)}
	next, err := EvaluateCancellation(past, cancellation("101", day(-30), domain.SlotMorning, 1))
	require.NoError(t, err)
	assert.Empty(t, next)
}

// TestBookingMutation_PredicateTracksLatestState verifies the commit-time
// re-validation: a predicate built from one snapshot must reject when the
// latest state has taken the same machine.
func TestBookingMutation_PredicateTracksLatestState(t *testing.T) {
	mut := BookingMutation(booking("101", day(0), domain.SlotMorning, 1), today)
	require.NotNil(t, mut.Predicate)

	// Against the empty state the booking is legal.
	assert.NoError(t, mut.Predicate(nil))

	// A concurrent commit took the machine first.
	latest := domain.Snapshot{reserved("102", day(0), domain.SlotMorning, 1)}
	assert.ErrorIs(t, mut.Predicate(latest), ErrMachineAlreadyBooked)
}

func TestCancellationMutation_Predicate(t *testing.T) {
	mut := CancellationMutation(cancellation("101", day(0), domain.SlotMorning, 1))
	require.NotNil(t, mut.Predicate)

	assert.ErrorIs(t, mut.Predicate(nil), ErrNotFound)
	assert.NoError(t, mut.Predicate(domain.Snapshot{
		reserved("101", day(0), domain.SlotMorning, 1),
	}))
}
