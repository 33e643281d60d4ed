package generate_slots

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// normalizeRequest валидирует запрос и подставляет количество дней по умолчанию
func normalizeRequest(req *Request) error {
	if req.StartDate.IsZero() {
		return ErrStartDateRequired
	}

	if req.DaysToGenerate == 0 {
		req.DaysToGenerate = domain.DefaultDaysToGenerate
	}

	if req.DaysToGenerate < domain.MinDaysToGenerate || req.DaysToGenerate > domain.MaxDaysToGenerate {
		return fmt.Errorf("%w: must be between %d and %d, got %d",
			ErrInvalidDaysToGenerate, domain.MinDaysToGenerate, domain.MaxDaysToGenerate, req.DaysToGenerate)
	}

	return nil
}
