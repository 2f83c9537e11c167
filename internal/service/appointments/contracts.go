package appointments

import (
	"context"
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByProfessionalWithFilter(ctx context.Context, filter domain.AgendaFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// RulesRepository интерфейс репозитория правил бронирования
type RulesRepository interface {
	Get(ctx context.Context) (*domain.BookingRules, error)
}

// DirectoryClient интерфейс клиента справочника салона
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
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
