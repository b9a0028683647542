package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-LaundryService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOrSlot   = "invalid date or slot, expected date YYYY-MM-DD and slot 08-12|12-16|16-20|20-00"
	msgInvalidInput        = "invalid reservation data"
	msgDateNotOffered      = "date is outside the two-week booking window"
	msgWeeklyQuota         = "weekly reservation quota for this room is exhausted"
	msgSlotMachineLimit    = "this room already holds the maximum machines for this slot"
	msgMachineBooked       = "this machine is already booked for this slot"
	msgSlotFull            = "all machines in this slot are booked"
	msgStoreConflict       = "reservation lost a race with a concurrent request, please retry"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: room=%s", req.Room)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrDateNotOffered):
			h.logger.Warn("POST /reservations - Date not offered: room=%s, date=%s", req.Room, req.Date)
			handlers.RespondBadRequest(w, msgDateNotOffered)

		case errors.Is(err, createReservation.ErrWeeklyQuotaExceeded):
			h.logger.Warn("POST /reservations - Weekly quota exceeded: room=%s, date=%s", req.Room, req.Date)
			handlers.RespondConflict(w, msgWeeklyQuota)

		case errors.Is(err, createReservation.ErrSlotMachineLimitExceeded):
			h.logger.Warn("POST /reservations - Slot machine limit: room=%s, date=%s, slot=%s",
				req.Room, req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotMachineLimit)

		case errors.Is(err, createReservation.ErrMachineAlreadyBooked):
			h.logger.Warn("POST /reservations - Machine already booked: date=%s, slot=%s, machine=%d",
				req.Date, req.Slot, req.Machine)
			handlers.RespondConflict(w, msgMachineBooked)

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: date=%s, slot=%s", req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createReservation.ErrStoreConflict):
			h.logger.Warn("POST /reservations - Store conflict: room=%s, date=%s, slot=%s",
				req.Room, req.Date, req.Slot)
			handlers.RespondConflict(w, msgStoreConflict)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room=%s, error=%v",
				req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: room=%s, date=%s, slot=%s, machine=%d",
		result.Room, req.Date, req.Slot, result.Machine)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
