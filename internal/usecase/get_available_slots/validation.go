package get_available_slots

import (
	"fmt"

	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one serviceID is required", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateServices проверяет, что все услуги активны и оказываются мастером.
// Возвращает суммарную длительность корзины.
func validateServices(professional *directory.Professional, services []*directory.Service) (int, error) {
	totalDuration := 0

	for _, svc := range services {
		if !svc.Active {
			return 0, fmt.Errorf("%w: service id=%d", ErrServiceInactive, svc.ID)
		}
		if !professional.Offers(svc.ID) {
			return 0, fmt.Errorf("%w: service id=%d", ErrServiceNotOffered, svc.ID)
		}
		totalDuration += svc.DurationMinutes
	}

	if totalDuration <= 0 {
		return 0, fmt.Errorf("%w: total duration must be positive", ErrInvalidInput)
	}

	return totalDuration, nil
}
