package rules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/dbmetrics"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/psqlbuilder"
)

// Правила бронирования едины на весь салон и хранятся одной строкой
const singletonID = 1

// DBExecutor интерфейс для работы с БД (переиспользуем из dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с правилами бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущие правила бронирования.
// Если строка ещё не создана, возвращает ErrRulesNotFound - вызывающий
// подставляет значения по умолчанию (domain.DefaultBookingRules).
func (r *Repository) Get(ctx context.Context) (*domain.BookingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"lunch_start",
		"lunch_end",
		"buffer_minutes",
		"cancellation_limit_hours",
		"opening_time",
		"closing_time",
		"slot_granularity_minutes",
		"created_at",
		"updated_at",
	).
		From("booking_rules").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var rules domain.BookingRules
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.ID,
		&rules.LunchStart,
		&rules.LunchEnd,
		&rules.BufferMinutes,
		&rules.CancellationLimitHours,
		&rules.OpeningTime,
		&rules.ClosingTime,
		&rules.SlotGranularityMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRulesNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan rules: %v", ErrScanRow, err)
	}

	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return &rules, nil
}

// Upsert сохраняет правила бронирования (создает строку или обновляет её)
func (r *Repository) Upsert(ctx context.Context, rules *domain.BookingRules) (*domain.BookingRules, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_rules").
		Columns(
			"id",
			"lunch_start",
			"lunch_end",
			"buffer_minutes",
			"cancellation_limit_hours",
			"opening_time",
			"closing_time",
			"slot_granularity_minutes",
		).
		Values(
			singletonID,
			rules.LunchStart,
			rules.LunchEnd,
			rules.BufferMinutes,
			rules.CancellationLimitHours,
			rules.OpeningTime,
			rules.ClosingTime,
			rules.SlotGranularityMinutes,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			lunch_start = EXCLUDED.lunch_start,
			lunch_end = EXCLUDED.lunch_end,
			buffer_minutes = EXCLUDED.buffer_minutes,
			cancellation_limit_hours = EXCLUDED.cancellation_limit_hours,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			slot_granularity_minutes = EXCLUDED.slot_granularity_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rules.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	rules.CreatedAt = createdAt.Time
	rules.UpdatedAt = updatedAt.Time

	return rules, nil
}
