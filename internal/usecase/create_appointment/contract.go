package create_appointment

import (
	"context"
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, app *domain.Appointment) (*domain.Appointment, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
}

// RulesRepository интерфейс репозитория правил бронирования
type RulesRepository interface {
	Get(ctx context.Context) (*domain.BookingRules, error)
}

// DirectoryClient интерфейс клиента справочника салона
type DirectoryClient interface {
	GetProfessional(ctx context.Context, professionalID int64) (*directory.Professional, error)
	GetServices(ctx context.Context, serviceIDs []int64) ([]*directory.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
