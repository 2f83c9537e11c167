package get_user_appointments

import (
	"context"

	"github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments/models"
)

// AppointmentService интерфейс сервиса записей
type AppointmentService interface {
	GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
