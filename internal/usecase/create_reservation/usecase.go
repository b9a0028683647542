package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/internal/engine"
	storage "github.com/m04kA/SMC-LaundryService/internal/infra/storage/reservation"
)

// UseCase use case для создания резервации
type UseCase struct {
	store        ReservationStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания резервации.
//
// Решение принимается дважды: сначала на снапшоте вызывающей стороны (быстрая
// диагностика без блокировки), затем внутри Store.Commit на актуальном
// состоянии, что закрывает гонку read-then-write между конкурентными
// запросами. Повтор при конфликте остаётся явным действием клиента.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%s, date=%s, slot=%s, machine=%d",
		req.Room, req.Date.Format(domain.DateFormat), req.Slot, req.Machine)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем "сегодня" один раз на весь запрос
	today := domain.NormalizeDate(uc.timeProvider.Now())
	bookingReq := req.toBookingRequest()

	// 3. Предварительная проверка на текущем снапшоте
	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to read snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to read snapshot: %v", ErrInternal, err)
	}

	if _, err := engine.EvaluateBooking(snap, bookingReq, today); err != nil {
		uc.logger.Warn("CreateReservation: rejected: %v", err)
		return nil, mapEngineError(err)
	}

	// 4. Коммит с повторной проверкой предиката на актуальном состоянии
	if err := uc.store.Commit(ctx, engine.BookingMutation(bookingReq, today)); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			uc.logger.Warn("CreateReservation: commit lost the race: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStoreConflict, err)
		}
		uc.logger.Error("CreateReservation: commit failed: %v", err)
		return nil, fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
	}

	week := domain.ISOWeekOf(bookingReq.Date)
	uc.logger.Info("CreateReservation: reserved room=%s, date=%s, slot=%s, machine=%d (week %s)",
		req.Room, bookingReq.Date.Format(domain.DateFormat), req.Slot, req.Machine, week)

	return &Response{
		Room:        bookingReq.Room,
		Date:        bookingReq.Date,
		Slot:        bookingReq.Slot,
		Machine:     bookingReq.Machine,
		Week:        week,
		CurrentWeek: week == domain.ISOWeekOf(today),
	}, nil
}

// mapEngineError конвертирует отказы движка в ошибки usecase
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, engine.ErrDateNotOffered):
		return fmt.Errorf("%w: %v", ErrDateNotOffered, err)
	case errors.Is(err, engine.ErrWeeklyQuotaExceeded):
		return fmt.Errorf("%w: %v", ErrWeeklyQuotaExceeded, err)
	case errors.Is(err, engine.ErrSlotMachineLimitExceeded):
		return fmt.Errorf("%w: %v", ErrSlotMachineLimitExceeded, err)
	case errors.Is(err, engine.ErrMachineAlreadyBooked):
		return fmt.Errorf("%w: %v", ErrMachineAlreadyBooked, err)
	case errors.Is(err, engine.ErrSlotFull):
		return fmt.Errorf("%w: %v", ErrSlotFull, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
