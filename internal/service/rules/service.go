package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/internal/service/rules/models"
)

// Service сервис для работы с правилами бронирования
type Service struct {
	rulesRepo       RulesRepository
	directoryClient DirectoryClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(
	rulesRepo RulesRepository,
	directoryClient DirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		rulesRepo:       rulesRepo,
		directoryClient: directoryClient,
		logger:          logger,
	}
}

// Get возвращает действующие правила салона
// Публичный метод - пока админ не сохранил собственные значения, отдаются дефолтные
func (s *Service) Get(ctx context.Context) (*models.RulesResponse, error) {
	s.logger.Info("Get: fetching booking rules")

	rules, err := s.rulesRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Error("Get: repository error: %v", err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		rules = domain.DefaultBookingRules()
		s.logger.Info("Get: no stored rules, using defaults")
	}

	return models.FromDomainRules(rules), nil
}

// Update обновляет правила салона
// Доступно только админу. Поддерживает частичное обновление -
// обновляются только указанные поля поверх действующих значений.
func (s *Service) Update(ctx context.Context, req *models.UpdateRulesRequest) (*models.RulesResponse, error) {
	s.logger.Info("Update: updating booking rules by user=%d", req.UserID)

	// 1. Проверяем права доступа (только админ)
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. Получаем действующие правила, при отсутствии берём дефолтные
	rules, err := s.rulesRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		rules = domain.DefaultBookingRules()
	}

	// 3. Применяем обновления и валидируем результат
	req.ApplyToRules(rules)
	if err := s.validateRules(rules); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	updated, err := s.rulesRepo.Upsert(ctx, rules)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking rules")
	return models.FromDomainRules(updated), nil
}

// Вспомогательные методы

// validateRules проверяет бизнес-ограничения правил
func (s *Service) validateRules(rules *domain.BookingRules) error {
	if err := rules.OpeningTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
	}
	if err := rules.ClosingTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
	}
	if !rules.OpeningTime.IsBefore(rules.ClosingTime) {
		return fmt.Errorf("%w: openingTime must be before closingTime", ErrInvalidInput)
	}

	// Обед опционален: обе границы либо пустые, либо валидные
	if !rules.LunchStart.IsZero() || !rules.LunchEnd.IsZero() {
		if err := rules.LunchStart.Validate(); err != nil {
			return fmt.Errorf("%w: invalid lunchStart: %v", ErrInvalidInput, err)
		}
		if err := rules.LunchEnd.Validate(); err != nil {
			return fmt.Errorf("%w: invalid lunchEnd: %v", ErrInvalidInput, err)
		}
		if !rules.LunchStart.IsBefore(rules.LunchEnd) {
			return fmt.Errorf("%w: lunchStart must be before lunchEnd", ErrInvalidInput)
		}
	}

	if rules.BufferMinutes < domain.MinBufferMinutes || rules.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferMinutes, domain.MaxBufferMinutes)
	}

	if rules.CancellationLimitHours < domain.MinCancellationLimitHours ||
		rules.CancellationLimitHours > domain.MaxCancellationLimitHours {
		return fmt.Errorf("%w: cancellationLimitHours must be between %d and %d",
			ErrInvalidInput, domain.MinCancellationLimitHours, domain.MaxCancellationLimitHours)
	}

	if rules.SlotGranularityMinutes < domain.MinSlotGranularityMinutes ||
		rules.SlotGranularityMinutes > domain.MaxSlotGranularityMinutes {
		return fmt.Errorf("%w: slotGranularityMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotGranularityMinutes, domain.MaxSlotGranularityMinutes)
	}

	return nil
}

// checkAdminAccess проверяет, что пользователь - админ
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.directoryClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if user.Role != directory.RoleAdmin {
		s.logger.Warn("checkAdminAccess: user=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
