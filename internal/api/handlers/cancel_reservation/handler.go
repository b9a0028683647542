package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	cancelReservation "github.com/m04kA/SMC-LaundryService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrSlot  = "invalid date or slot, expected date YYYY-MM-DD and slot 08-12|12-16|16-20|20-00"
	msgInvalidInput       = "invalid reservation data"
	msgNotFound           = "reservation not found"
	msgStoreConflict      = "cancellation lost a race with a concurrent request, please retry"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("DELETE /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelReservation.ErrInvalidInput):
			h.logger.Warn("DELETE /reservations - Invalid input: room=%s", req.Room)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancelReservation.ErrNotFound):
			h.logger.Warn("DELETE /reservations - Not found: room=%s, date=%s, slot=%s, machine=%d",
				req.Room, req.Date, req.Slot, req.Machine)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelReservation.ErrStoreConflict):
			h.logger.Warn("DELETE /reservations - Store conflict: room=%s, date=%s, slot=%s",
				req.Room, req.Date, req.Slot)
			handlers.RespondConflict(w, msgStoreConflict)

		default:
			h.logger.Error("DELETE /reservations - Failed to cancel reservation: room=%s, error=%v",
				req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations - Reservation cancelled: room=%s, date=%s, slot=%s, machine=%d",
		result.Room, req.Date, req.Slot, result.Machine)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
