package cancel_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	storage "github.com/m04kA/SMC-LaundryService/internal/infra/storage/reservation"
)

type fakeStore struct {
	state     domain.Snapshot
	commitErr error
}

func (s *fakeStore) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	return s.state.Clone(), nil
}

func (s *fakeStore) Commit(ctx context.Context, mut domain.Mutation) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	if mut.Predicate != nil {
		if err := mut.Predicate(s.state); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrConflict, err)
		}
	}
	s.state = s.state.Apply(mut)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var day = time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	target := domain.Reservation{Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 1}
	sibling := domain.Reservation{Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 2}
	store := &fakeStore{state: domain.Snapshot{target, sibling}}
	uc := NewUseCase(store, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "101", resp.Room)
	assert.Equal(t, 1, resp.Machine)

	// Ряд второй машины той же комнаты остаётся на месте.
	require.Len(t, store.state, 1)
	assert.True(t, store.state.Contains(sibling))
}

// TestExecute_NotFound verifies exact-match semantics: a mismatch on any of
// the four fields is NotFound and never touches the state.
func TestExecute_NotFound(t *testing.T) {
	existing := domain.Reservation{Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 1}

	cases := []struct {
		name string
		req  *Request
	}{
		{"wrong room", &Request{Room: "102", Date: day, Slot: domain.SlotMorning, Machine: 1}},
		{"wrong date", &Request{Room: "101", Date: day.AddDate(0, 0, 1), Slot: domain.SlotMorning, Machine: 1}},
		{"wrong slot", &Request{Room: "101", Date: day, Slot: domain.SlotEvening, Machine: 1}},
		{"wrong machine", &Request{Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{state: domain.Snapshot{existing}}
			uc := NewUseCase(store, nopLogger{})

			_, err := uc.Execute(context.Background(), tc.req)

			assert.ErrorIs(t, err, ErrNotFound)
			assert.Len(t, store.state, 1)
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	store := &fakeStore{}
	uc := NewUseCase(store, nopLogger{})

	cases := []*Request{
		{Room: "", Date: day, Slot: domain.SlotMorning, Machine: 1},
		{Room: "101", Slot: domain.SlotMorning, Machine: 1},
		{Room: "101", Date: day, Slot: "bad", Machine: 1},
		{Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 0},
	}

	for _, req := range cases {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_CommitConflict(t *testing.T) {
	store := &fakeStore{
		state:     domain.Snapshot{{Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 1}},
		commitErr: fmt.Errorf("%w: removed meanwhile", storage.ErrConflict),
	}
	uc := NewUseCase(store, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Room: "101", Date: day, Slot: domain.SlotMorning, Machine: 1,
	})

	assert.ErrorIs(t, err, ErrStoreConflict)
}

// TestExecute_PastDate verifies that history can be cleaned up: cancellation
// has no booking-window check.
func TestExecute_PastDate(t *testing.T) {
	past := day.AddDate(0, 0, -60)
	store := &fakeStore{state: domain.Snapshot{
		{Room: "101", Date: past, Slot: domain.SlotNight, Machine: 3},
	}}
	uc := NewUseCase(store, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Room: "101", Date: past, Slot: domain.SlotNight, Machine: 3,
	})

	require.NoError(t, err)
	assert.Empty(t, store.state)
}
