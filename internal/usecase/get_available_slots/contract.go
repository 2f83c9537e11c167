package get_available_slots

import (
	"context"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByProfessionalWithFilter получает записи мастера по фильтру
	GetByProfessionalWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
}

// RulesRepository интерфейс репозитория правил бронирования
type RulesRepository interface {
	// Get получает единственную запись с правилами салона
	Get(ctx context.Context) (*domain.BookingRules, error)
}

// DirectoryClient интерфейс клиента справочника салона
type DirectoryClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*directory.Professional, error)
	GetServices(ctx context.Context, serviceIDs []int64) ([]*directory.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
