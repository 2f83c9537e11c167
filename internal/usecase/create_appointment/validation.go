package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

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

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateServices проверяет, что все услуги активны и оказываются мастером
func validateServices(professional *directory.Professional, services []*directory.Service) error {
	for _, svc := range services {
		if !svc.Active {
			return fmt.Errorf("%w: service id=%d", ErrServiceInactive, svc.ID)
		}
		if !professional.Offers(svc.ID) {
			return fmt.Errorf("%w: service id=%d", ErrServiceNotOffered, svc.ID)
		}
	}
	return nil
}

// validateDateTime проверяет, что запись не в прошлом
func validateDateTime(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	// Для записи на сегодня время начала должно быть в будущем
	if isSameDay(date, now) {
		currentTime := types.NewTimeString(now)
		if startTime.IsBefore(currentTime) {
			return ErrTimeInPast
		}
	}

	return nil
}

// validateSlotFits проверяет, что слот лежит на сетке и помещается в рабочее окно.
// Кандидат вместе с буфером должен заканчиваться не позже конца окна.
func validateSlotFits(
	startTime types.TimeString,
	durationMinutes int,
	rules *domain.BookingRules,
	windowStart, windowEnd types.TimeString,
) error {
	if startTime.IsBefore(windowStart) {
		return ErrOutsideWorkingHours
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	windowStartMinutes, err := windowStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// Время начала должно совпадать с одним из генерируемых слотов
	if (startMinutes-windowStartMinutes)%rules.SlotGranularityMinutes != 0 {
		return ErrInvalidTimeSlot
	}

	paddedEnd, err := startTime.AddMinutes(durationMinutes + rules.BufferMinutes)
	if err != nil {
		return ErrOutsideWorkingHours
	}
	if paddedEnd.IsAfter(windowEnd) {
		return ErrOutsideWorkingHours
	}

	// Пересечение с обеденным перерывом (буфер учитывается на хвосте кандидата)
	if rules.HasLunchBreak() && startTime.IsBefore(rules.LunchEnd) && paddedEnd.IsAfter(rules.LunchStart) {
		return ErrLunchOverlap
	}

	return nil
}

// hasConflict проверяет пересечение кандидата (с буфером) с существующими записями.
// Строгие неравенства: касание границ не является пересечением,
// буфер существующих записей не добавляется.
func hasConflict(
	startTime types.TimeString,
	durationMinutes int,
	bufferMinutes int,
	date time.Time,
	appointments []*domain.Appointment,
) (bool, error) {
	paddedEnd, err := startTime.AddMinutes(durationMinutes + bufferMinutes)
	if err != nil {
		return false, err
	}

	for _, app := range appointments {
		if !app.IsActive() {
			continue
		}
		if !isSameDay(app.Date, date) {
			continue
		}

		if app.StartTime.IsBefore(paddedEnd) && app.EndTime.IsAfter(startTime) {
			return true, nil
		}
	}

	return false, nil
}

// snapshotServices фиксирует названия и суммарную цену услуг на момент записи
func snapshotServices(services []*directory.Service) (names string, totalPrice float64, totalDuration int) {
	parts := make([]string, 0, len(services))
	for _, svc := range services {
		parts = append(parts, svc.Name)
		if svc.Price != nil {
			totalPrice += *svc.Price
		}
		totalDuration += svc.DurationMinutes
	}
	return strings.Join(parts, ", "), totalPrice, totalDuration
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
