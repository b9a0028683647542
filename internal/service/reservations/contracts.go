package reservations

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ReservationStore интерфейс хранилища резерваций (только чтение)
type ReservationStore interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
