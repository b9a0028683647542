package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ReservationStore интерфейс хранилища резерваций (только чтение)
type ReservationStore interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// TimeProvider интерфейс для получения текущей даты (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
