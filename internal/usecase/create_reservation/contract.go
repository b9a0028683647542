package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ReservationStore интерфейс хранилища резерваций
type ReservationStore interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Commit(ctx context.Context, mut domain.Mutation) error
}

// TimeProvider интерфейс для получения текущей даты (для тестирования).
// Движок аллокации остаётся чистой функцией от явного "сегодня".
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
