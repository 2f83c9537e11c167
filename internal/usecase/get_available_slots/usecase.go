package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
)

// UseCase use case для получения доступных слотов записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	rulesRepo       RulesRepository
	directoryClient DirectoryClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	rulesRepo RulesRepository,
	directoryClient DirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		rulesRepo:       rulesRepo,
		directoryClient: directoryClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, professional=%d, services=%v, date=%s",
		req.UserID, req.ProfessionalID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера
	professional, err := uc.directoryClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, directory.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 3. Получаем услуги корзины
	services, err := uc.directoryClient.GetServices(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, directory.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 4. Проверяем услуги и считаем суммарную длительность
	totalDuration, err := validateServices(professional, services)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: services validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем правила салона, при отсутствии используем дефолтные
	rules, err := uc.rulesRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, rulesRepo.ErrRulesNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get booking rules: %v", err)
			return nil, fmt.Errorf("%w: failed to get booking rules: %v", ErrInternal, err)
		}
		rules = domain.DefaultBookingRules()
		uc.logger.Info("GetAvailableSlots: using default booking rules")
	}

	// 6. Получаем активные записи мастера на эту дату
	filter := domain.AgendaFilter{
		ProfessionalID:  req.ProfessionalID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступные слоты
	slots, err := computeAvailableSlots(professional, rules, totalDuration, req.Date, appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for professional=%d, date=%s, duration=%d",
		len(slots), req.ProfessionalID, req.Date.Format(domain.DateFormat), totalDuration)

	return &Response{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		ServiceIDs:      req.ServiceIDs,
		DurationMinutes: totalDuration,
		Slots:           slots,
	}, nil
}
