package update_booking_rules

import (
	"context"

	"github.com/jc1971451-arch/paulo-jorge2/internal/service/rules/models"
)

// RulesService интерфейс сервиса правил бронирования
type RulesService interface {
	Update(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
