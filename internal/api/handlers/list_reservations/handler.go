package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
)

const (
	msgInvalidParams = "invalid query parameters"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
// Query params: room, date, week, year (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	roomStr := query.Get("room")
	dateStr := query.Get("date")
	weekStr := query.Get("week")
	yearStr := query.Get("year")

	serviceReq, err := ToServiceRequest(roomStr, dateStr, weekStr, yearStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
