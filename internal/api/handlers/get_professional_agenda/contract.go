package get_professional_agenda

import (
	"context"

	"github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments/models"
)

// AppointmentService интерфейс сервиса записей
type AppointmentService interface {
	GetProfessionalAgenda(ctx context.Context, req *models.GetAgendaRequest) (*models.AppointmentListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
