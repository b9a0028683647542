package get_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// UseCase use case для построения двухнедельной сетки доступности
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

// Execute строит сетку по одному консистентному снапшоту: 14 предлагаемых
// дней x 4 слота x 3 машины, в каждой ячейке занявшая её комната
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	today := domain.NormalizeDate(uc.timeProvider.Now())

	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to read snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to read snapshot: %v", ErrInternal, err)
	}

	dates := domain.OfferedDates(today)
	currentWeek := domain.ISOWeekOf(today)

	resp := &Response{
		Today: today,
		Weeks: make([]WeekSchedule, 0, 2),
	}

	// Окно из 14 дней всегда начинается с понедельника: режем его на две
	// недели по 7 дней.
	for w := 0; w < 2; w++ {
		weekDates := dates[w*7 : (w+1)*7]
		week := domain.ISOWeekOf(weekDates[0])

		ws := WeekSchedule{
			Week:        week,
			CurrentWeek: week == currentWeek,
			Days:        make([]DaySchedule, 0, len(weekDates)),
		}

		for _, date := range weekDates {
			ws.Days = append(ws.Days, buildDay(snap, date))
		}

		resp.Weeks = append(resp.Weeks, ws)
	}

	uc.logger.Info("GetSchedule: built schedule for %s..%s (%d reservations)",
		dates[0].Format(domain.DateFormat), dates[len(dates)-1].Format(domain.DateFormat), len(snap))

	return resp, nil
}
