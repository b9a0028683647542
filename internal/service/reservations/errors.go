package reservations

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах фильтра
	ErrInvalidInput = errors.New("reservations.service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
