package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/internal/engine"
	storage "github.com/m04kA/SMC-LaundryService/internal/infra/storage/reservation"
)

// UseCase use case для отмены резервации
type UseCase struct {
	store  ReservationStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute выполняет use case отмены резервации. Отмена никогда не проверяет
// квоты: она только ослабляет ограничения. Отмена отсутствующей резервации
// не меняет состояние и возвращает ErrNotFound.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: room=%s, date=%s, slot=%s, machine=%d",
		req.Room, req.Date.Format(domain.DateFormat), req.Slot, req.Machine)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		return nil, err
	}

	cancelReq := req.toCancellationRequest()

	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("CancelReservation: failed to read snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to read snapshot: %v", ErrInternal, err)
	}

	if _, err := engine.EvaluateCancellation(snap, cancelReq); err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			uc.logger.Warn("CancelReservation: not found: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		uc.logger.Warn("CancelReservation: rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := uc.store.Commit(ctx, engine.CancellationMutation(cancelReq)); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			uc.logger.Warn("CancelReservation: commit lost the race: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		uc.logger.Error("CancelReservation: commit failed: %v", err)
		return nil, fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelReservation: removed room=%s, date=%s, slot=%s, machine=%d",
		req.Room, cancelReq.Date.Format(domain.DateFormat), req.Slot, req.Machine)

	return &Response{
		Room:    cancelReq.Room,
		Date:    cancelReq.Date,
		Slot:    cancelReq.Slot,
		Machine: cancelReq.Machine,
	}, nil
}

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Room) == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if !req.Slot.Valid() {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, req.Slot)
	}
	if req.Machine < domain.MinMachine || req.Machine > domain.MaxMachine {
		return fmt.Errorf("%w: machine must be between %d and %d",
			ErrInvalidInput, domain.MinMachine, domain.MaxMachine)
	}
	return nil
}
