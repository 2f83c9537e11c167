package rules

import (
	"context"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

// RulesRepository интерфейс репозитория правил бронирования
type RulesRepository interface {
	Get(ctx context.Context) (*domain.BookingRules, error)
	Upsert(ctx context.Context, rules *domain.BookingRules) (*domain.BookingRules, error)
}

// DirectoryClient интерфейс клиента справочника салона
type DirectoryClient interface {
	GetUser(ctx context.Context, userID int64) (*directory.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
