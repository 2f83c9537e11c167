package cancel_appointment

import (
	"github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments/models"
)

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(userID int64) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
