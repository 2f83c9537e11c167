package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	rulesRepo       RulesRepository
	directoryClient DirectoryClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	rulesRepo RulesRepository,
	directoryClient DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		rulesRepo:       rulesRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции:
// выборка записей мастера блокирует строки (FOR UPDATE), чтобы два клиента
// не заняли один слот одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, professional=%d, services=%v, date=%s, time=%s",
		req.UserID, req.ProfessionalID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что запись не в прошлом
	if err := validateDateTime(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: date/time validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем мастера
	professional, err := uc.directoryClient.GetProfessional(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, directory.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 5. Мастер должен принимать в этот день недели
	if !professional.WorksOn(domain.WeekdayLabel(req.Date)) {
		uc.logger.Warn("CreateAppointment: professional id=%d does not work on %s",
			req.ProfessionalID, req.Date.Format(domain.DateFormat))
		return nil, ErrNonWorkingDay
	}

	// 6. Получаем услуги корзины
	services, err := uc.directoryClient.GetServices(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, directory.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 7. Проверяем услуги
	if err := validateServices(professional, services); err != nil {
		uc.logger.Warn("CreateAppointment: services validation failed: %v", err)
		return nil, err
	}

	// 8. Снимок данных услуг на момент записи
	serviceNames, totalPrice, totalDuration := snapshotServices(services)
	if totalDuration <= 0 {
		return nil, fmt.Errorf("%w: total duration must be positive", ErrInvalidInput)
	}

	profStart, err := types.NewTimeStringFromString(professional.StartTime)
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid professional start time %q: %v", professional.StartTime, err)
		return nil, fmt.Errorf("%w: invalid professional working hours: %v", ErrInternal, err)
	}
	profEnd, err := types.NewTimeStringFromString(professional.EndTime)
	if err != nil {
		uc.logger.Error("CreateAppointment: invalid professional end time %q: %v", professional.EndTime, err)
		return nil, fmt.Errorf("%w: invalid professional working hours: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 9. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Получаем правила салона, при отсутствии используем дефолтные
		rules, err := uc.rulesRepo.Get(txCtx)
		if err != nil {
			if !errors.Is(err, rulesRepo.ErrRulesNotFound) {
				uc.logger.Error("CreateAppointment: failed to get booking rules: %v", err)
				return fmt.Errorf("%w: failed to get booking rules: %v", ErrInternal, err)
			}
			rules = domain.DefaultBookingRules()
			uc.logger.Info("CreateAppointment: using default booking rules")
		}

		// 9.2. Слот должен лежать на сетке и помещаться в эффективное окно
		windowStart, windowEnd := rules.EffectiveWindow(profStart, profEnd)
		if err := validateSlotFits(req.StartTime, totalDuration, rules, windowStart, windowEnd); err != nil {
			uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
			return err
		}

		// 9.3. Получаем активные записи мастера на эту дату с блокировкой (FOR UPDATE)
		filter := domain.AgendaFilter{
			ProfessionalID:  req.ProfessionalID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		appointments, err := uc.appointmentRepo.GetByProfessionalWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 9.4. Повторяем проверку конфликтов внутри транзакции
		conflict, err := hasConflict(req.StartTime, totalDuration, rules.BufferMinutes, req.Date, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if conflict {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		endTime, err := req.StartTime.AddMinutes(totalDuration)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		// 9.5. Создаем запись со снимком данных услуг
		appointment := &domain.Appointment{
			UserID:          req.UserID,
			ProfessionalID:  req.ProfessionalID,
			ServiceIDs:      req.ServiceIDs,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: totalDuration,
			Status:          domain.StatusConfirmed,
			ServiceNames:    serviceNames,
			TotalPrice:      totalPrice,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ProfessionalID:  result.ProfessionalID,
		ServiceIDs:      result.ServiceIDs,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceNames:    result.ServiceNames,
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
