package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrNotFound возвращается, когда резервация с точным совпадением всех
	// четырёх полей отсутствует
	ErrNotFound = errors.New("cancel_reservation: reservation not found")

	// ErrStoreConflict возвращается, когда коммит проиграл гонку
	// конкурентному коммиту
	ErrStoreConflict = errors.New("cancel_reservation: store commit conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
