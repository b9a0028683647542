package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-LaundryService/internal/service/reservations/models"
)

// ReservationService интерфейс сервиса чтения резерваций
type ReservationService interface {
	List(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
