package engine

import "errors"

// Rejections are expected, frequent outcomes of contention for scarce slots.
// They are returned as values and mapped to user-facing messages at the edge,
// never treated as failures of the engine itself.
var (
	// ErrInvalidInput возвращается при некорректной форме запроса (пустая
	// комната, неизвестный слот, номер машины вне диапазона)
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrDateNotOffered возвращается, когда дата вне двухнедельного окна
	// бронирования
	ErrDateNotOffered = errors.New("engine: date is not offered for booking")

	// ErrWeeklyQuotaExceeded возвращается, когда комната исчерпала недельную
	// квоту отдельных слотов
	ErrWeeklyQuotaExceeded = errors.New("engine: weekly quota exceeded")

	// ErrSlotMachineLimitExceeded возвращается, когда комната уже держит
	// максимум машин в этом слоте
	ErrSlotMachineLimitExceeded = errors.New("engine: machine limit for this slot exceeded")

	// ErrMachineAlreadyBooked возвращается, когда машина занята в этом слоте
	ErrMachineAlreadyBooked = errors.New("engine: machine already booked")

	// ErrSlotFull возвращается, когда все машины слота заняты
	ErrSlotFull = errors.New("engine: slot is full")

	// ErrNotFound возвращается, когда отменяемая резервация отсутствует
	ErrNotFound = errors.New("engine: reservation not found")
)
