package models

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// Request модели

// UpdateRulesRequest запрос на обновление правил бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateRulesRequest struct {
	UserID                 int64   `json:"userId"`
	LunchStart             *string `json:"lunchStart,omitempty"`             // "13:00", пустая строка отключает обед
	LunchEnd               *string `json:"lunchEnd,omitempty"`               // "14:00"
	BufferMinutes          *int    `json:"bufferMinutes,omitempty"`          // Буфер после услуги
	CancellationLimitHours *int    `json:"cancellationLimitHours,omitempty"` // Окно самостоятельной отмены
	OpeningTime            *string `json:"openingTime,omitempty"`            // "09:00"
	ClosingTime            *string `json:"closingTime,omitempty"`            // "19:00"
	SlotGranularityMinutes *int    `json:"slotGranularityMinutes,omitempty"` // Шаг сетки слотов
}

// ApplyToRules применяет переданные поля к правилам
func (r *UpdateRulesRequest) ApplyToRules(rules *domain.BookingRules) {
	if r.LunchStart != nil {
		rules.LunchStart = types.TimeString(*r.LunchStart)
	}
	if r.LunchEnd != nil {
		rules.LunchEnd = types.TimeString(*r.LunchEnd)
	}
	if r.BufferMinutes != nil {
		rules.BufferMinutes = *r.BufferMinutes
	}
	if r.CancellationLimitHours != nil {
		rules.CancellationLimitHours = *r.CancellationLimitHours
	}
	if r.OpeningTime != nil {
		rules.OpeningTime = types.TimeString(*r.OpeningTime)
	}
	if r.ClosingTime != nil {
		rules.ClosingTime = types.TimeString(*r.ClosingTime)
	}
	if r.SlotGranularityMinutes != nil {
		rules.SlotGranularityMinutes = *r.SlotGranularityMinutes
	}
}

// Response модели

// RulesResponse ответ с правилами бронирования
type RulesResponse struct {
	LunchStart             string    `json:"lunchStart"`
	LunchEnd               string    `json:"lunchEnd"`
	BufferMinutes          int       `json:"bufferMinutes"`
	CancellationLimitHours int       `json:"cancellationLimitHours"`
	OpeningTime            string    `json:"openingTime"`
	ClosingTime            string    `json:"closingTime"`
	SlotGranularityMinutes int       `json:"slotGranularityMinutes"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// FromDomainRules конвертирует domain модель в DTO
func FromDomainRules(r *domain.BookingRules) *RulesResponse {
	if r == nil {
		return nil
	}

	return &RulesResponse{
		LunchStart:             r.LunchStart.String(),
		LunchEnd:               r.LunchEnd.String(),
		BufferMinutes:          r.BufferMinutes,
		CancellationLimitHours: r.CancellationLimitHours,
		OpeningTime:            r.OpeningTime.String(),
		ClosingTime:            r.ClosingTime.String(),
		SlotGranularityMinutes: r.SlotGranularityMinutes,
		UpdatedAt:              r.UpdatedAt,
	}
}
