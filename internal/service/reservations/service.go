package reservations

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
	"github.com/m04kA/SMC-LaundryService/internal/service/reservations/models"
)

// Service сервис чтения резерваций: списки для таблиц доступности и
// административного просмотра. Прошедшие резервации не вычищаются, они
// остаются историей (чистка, если нужна, выполняется извне).
type Service struct {
	store  ReservationStore
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(store ReservationStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List возвращает резервации, удовлетворяющие фильтру, в порядке хранилища
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	logMsg := "List: fetching reservations"
	if req.Room != nil {
		logMsg += fmt.Sprintf(", room=%s", *req.Room)
	}
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	if req.Week != nil {
		logMsg += fmt.Sprintf(", week=%s", *req.Week)
	}
	s.logger.Info(logMsg)

	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		s.logger.Error("List: failed to read snapshot: %v", err)
		return nil, fmt.Errorf("%w: List - failed to read snapshot: %v", ErrInternal, err)
	}

	filtered := make(domain.Snapshot, 0, len(snap))
	for _, res := range snap {
		if req.Room != nil && res.Room != *req.Room {
			continue
		}
		if req.Date != nil && !domain.SameDate(res.Date, *req.Date) {
			continue
		}
		if req.Week != nil && domain.ISOWeekOf(res.Date) != *req.Week {
			continue
		}
		filtered = append(filtered, res)
	}

	s.logger.Info("List: returning %d of %d reservations", len(filtered), len(snap))
	return models.FromDomainList(filtered), nil
}
