package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrDateNotOffered возвращается, когда дата вне 14 предлагаемых дней
	ErrDateNotOffered = errors.New("create_reservation: date is not offered for booking")

	// ErrWeeklyQuotaExceeded возвращается, когда комната исчерпала недельную квоту слотов
	ErrWeeklyQuotaExceeded = errors.New("create_reservation: weekly quota exceeded")

	// ErrSlotMachineLimitExceeded возвращается, когда комната уже держит
	// максимум машин в этом слоте
	ErrSlotMachineLimitExceeded = errors.New("create_reservation: machine limit for this slot exceeded")

	// ErrMachineAlreadyBooked возвращается, когда выбранная машина занята
	ErrMachineAlreadyBooked = errors.New("create_reservation: machine already booked")

	// ErrSlotFull возвращается, когда все машины слота заняты
	ErrSlotFull = errors.New("create_reservation: slot is full")

	// ErrStoreConflict возвращается, когда коммит проиграл гонку
	// конкурентному коммиту; вызывающая сторона повторяет запрос сама
	ErrStoreConflict = errors.New("create_reservation: store commit conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
