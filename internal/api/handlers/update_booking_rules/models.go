package update_booking_rules

import "github.com/jc1971451-arch/paulo-jorge2/internal/service/rules/models"

// UpdateRulesRequest запрос на обновление правил бронирования
// Все поля опциональны - обновляются только переданные значения
type UpdateRulesRequest struct {
	LunchStart             *string `json:"lunchStart,omitempty"`
	LunchEnd               *string `json:"lunchEnd,omitempty"`
	BufferMinutes          *int    `json:"bufferMinutes,omitempty"`
	CancellationLimitHours *int    `json:"cancellationLimitHours,omitempty"`
	OpeningTime            *string `json:"openingTime,omitempty"`
	ClosingTime            *string `json:"closingTime,omitempty"`
	SlotGranularityMinutes *int    `json:"slotGranularityMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в service модель
func (r *UpdateRulesRequest) ToServiceRequest(userID int64) *models.UpdateRulesRequest {
	return &models.UpdateRulesRequest{
		UserID:                 userID,
		LunchStart:             r.LunchStart,
		LunchEnd:               r.LunchEnd,
		BufferMinutes:          r.BufferMinutes,
		CancellationLimitHours: r.CancellationLimitHours,
		OpeningTime:            r.OpeningTime,
		ClosingTime:            r.ClosingTime,
		SlotGranularityMinutes: r.SlotGranularityMinutes,
	}
}
