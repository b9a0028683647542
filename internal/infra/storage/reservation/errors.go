package reservation

import "errors"

var (
	// ErrConflict возвращается, когда коммит проиграл гонку конкурентному
	// коммиту: предикат, пройденный на снапшоте вызывающей стороны, больше
	// не выполняется на актуальном состоянии. Вызывающая сторона обновляет
	// снапшот и повторяет запрос явно.
	ErrConflict = errors.New("reservation.store: commit conflict")

	// ErrCorrupt возвращается при нечитаемом содержимом бэкенда. Фатально
	// на старте: хранилище не имеет права молча терять данные.
	ErrCorrupt = errors.New("reservation.store: backing data is corrupt")

	// ErrPersist возвращается, когда не удалось записать состояние на диск
	ErrPersist = errors.New("reservation.store: failed to persist state")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.store: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.store: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.store: failed to scan row")
)
