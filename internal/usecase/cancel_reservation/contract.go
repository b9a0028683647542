package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// ReservationStore интерфейс хранилища резерваций
type ReservationStore interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Commit(ctx context.Context, mut domain.Mutation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
