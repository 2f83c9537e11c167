package get_available_slots

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// computeAvailableSlots вычисляет доступные слоты мастера на дату.
// Курсор идёт от начала эффективного окна с шагом granularity.
// Кандидат занимает [cursor, cursor+duration), но при проверках конфликтов
// к его хвосту добавляется буфер. Буфер применяется ТОЛЬКО к кандидату,
// существующие записи учитываются по их фактическому концу.
func computeAvailableSlots(
	professional *directory.Professional,
	rules *domain.BookingRules,
	durationMinutes int,
	date time.Time,
	appointments []*domain.Appointment,
) ([]Slot, error) {
	// Мастер не принимает в этот день недели
	if !professional.WorksOn(domain.WeekdayLabel(date)) {
		return []Slot{}, nil
	}

	profStart, err := types.NewTimeStringFromString(professional.StartTime)
	if err != nil {
		return nil, err
	}
	profEnd, err := types.NewTimeStringFromString(professional.EndTime)
	if err != nil {
		return nil, err
	}

	// Эффективное окно: рабочие часы мастера, ограниченные часами салона
	windowStart, windowEnd := rules.EffectiveWindow(profStart, profEnd)
	if !windowStart.IsBefore(windowEnd) {
		return []Slot{}, nil
	}

	slots := make([]Slot, 0)
	cursor := windowStart

	for cursor.IsBefore(windowEnd) {
		candidateEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			// Услуга не помещается до полуночи
			break
		}

		paddedEnd, err := candidateEnd.AddMinutes(rules.BufferMinutes)
		if err != nil {
			break
		}

		// Кандидат вместе с буфером должен помещаться в окно.
		// Дальнейшие кандидаты начинаются позже, продолжать нет смысла.
		if paddedEnd.IsAfter(windowEnd) {
			break
		}

		if !overlapsLunch(cursor, paddedEnd, rules) && !hasConflict(cursor, paddedEnd, date, appointments) {
			slots = append(slots, Slot{
				StartTime:       cursor,
				DurationMinutes: durationMinutes,
			})
		}

		cursor, err = cursor.AddMinutes(rules.SlotGranularityMinutes)
		if err != nil {
			break
		}
	}

	return slots, nil
}

// overlapsLunch проверяет пересечение кандидата (с буфером) с обеденным перерывом.
// Интервалы полуоткрытые, граничные случаи пересечением не считаются:
// кандидат, заканчивающийся ровно в начало обеда, допустим.
func overlapsLunch(candidateStart, paddedEnd types.TimeString, rules *domain.BookingRules) bool {
	if !rules.HasLunchBreak() {
		return false
	}
	return candidateStart.IsBefore(rules.LunchEnd) && paddedEnd.IsAfter(rules.LunchStart)
}

// hasConflict проверяет пересечение кандидата (с буфером) с существующими записями.
// Отменённые записи и записи на другие даты не учитываются.
//
// Примеры (буфер 10 минут):
// - Кандидат 09:30-10:00, буфер до 10:10, запись 10:00-10:30 → ЕСТЬ конфликт (буфер)
// - Кандидат 10:30-11:00, запись 10:00-10:30 → НЕТ конфликта (граничат, буфер записи не добавляется)
func hasConflict(candidateStart, paddedEnd types.TimeString, date time.Time, appointments []*domain.Appointment) bool {
	for _, app := range appointments {
		if !app.IsActive() {
			continue
		}
		if !isSameDay(app.Date, date) {
			continue
		}

		// Строгие неравенства: касание границ не является пересечением
		if app.StartTime.IsBefore(paddedEnd) && app.EndTime.IsAfter(candidateStart) {
			return true
		}
	}
	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
