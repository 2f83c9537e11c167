package domain

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// BookingRules represents the salon-wide booking policy.
// Единая конфигурация на весь салон, не на отдельного мастера:
// обеденный перерыв, буфер после услуги, окно самостоятельной отмены,
// общие границы рабочего дня и шаг сетки слотов.
type BookingRules struct {
	ID                     int64
	LunchStart             types.TimeString
	LunchEnd               types.TimeString
	BufferMinutes          int // добавляется к хвосту кандидата только при проверке конфликтов
	CancellationLimitHours int
	OpeningTime            types.TimeString
	ClosingTime            types.TimeString
	SlotGranularityMinutes int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// HasLunchBreak returns true if a lunch window is configured
func (r *BookingRules) HasLunchBreak() bool {
	return !r.LunchStart.IsZero() && !r.LunchEnd.IsZero() && r.LunchStart.IsBefore(r.LunchEnd)
}

// EffectiveWindow пересекает рабочие часы мастера с общими границами салона
func (r *BookingRules) EffectiveWindow(start, end types.TimeString) (types.TimeString, types.TimeString) {
	if start.IsBefore(r.OpeningTime) {
		start = r.OpeningTime
	}
	if end.IsAfter(r.ClosingTime) {
		end = r.ClosingTime
	}
	return start, end
}

// DefaultBookingRules возвращает правила по умолчанию.
// Используются, пока админ не сохранил собственные значения.
func DefaultBookingRules() *BookingRules {
	return &BookingRules{
		LunchStart:             DefaultLunchStart,
		LunchEnd:               DefaultLunchEnd,
		BufferMinutes:          DefaultBufferMinutes,
		CancellationLimitHours: DefaultCancellationLimitHours,
		OpeningTime:            DefaultOpeningTime,
		ClosingTime:            DefaultClosingTime,
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
	}
}
