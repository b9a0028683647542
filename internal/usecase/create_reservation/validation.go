package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LaundryService/internal/domain"
)

// validateRequest валидирует форму запроса. Правила аллокации (квоты,
// занятость машин) проверяет движок, здесь проверяется только форма.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Room) == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Slot.Valid() {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, req.Slot)
	}

	if req.Machine < domain.MinMachine || req.Machine > domain.MaxMachine {
		return fmt.Errorf("%w: machine must be between %d and %d",
			ErrInvalidInput, domain.MinMachine, domain.MaxMachine)
	}

	return nil
}
