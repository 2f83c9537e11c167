package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	appointmentRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/appointment"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	rulesRepo       RulesRepository
	directoryClient DirectoryClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	rulesRepo RulesRepository,
	directoryClient DirectoryClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		rulesRepo:       rulesRepo,
		directoryClient: directoryClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - клиент видит только свои записи,
// сотрудник - записи своего мастера, админ - любые
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, appointment, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.appointmentRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProfessionalAgenda получает расписание мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых записей
// Доступно сотруднику мастера и админу
//
// Примеры использования:
// - Все активные записи: GetProfessionalAgenda(ctx, &GetAgendaRequest{ProfessionalID: 1, UserID: 5})
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetProfessionalAgenda(ctx context.Context, req *models.GetAgendaRequest) (*models.AppointmentListResponse, error) {
	logMsg := fmt.Sprintf("GetProfessionalAgenda: fetching agenda for professional=%d, user=%d", req.ProfessionalID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа сотрудника
	if err := s.checkStaffAccess(ctx, req.ProfessionalID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProfessionalAgenda: invalid filter for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByProfessionalWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProfessionalAgenda: repository error for professional=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProfessionalAgenda: successfully fetched %d appointments for professional=%d",
		len(appointments), req.ProfessionalID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись, пока до её начала остаётся не меньше
// окна самостоятельной отмены. Сотрудник мастера и админ отменяют без ограничения по времени.
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	// Получаем запись
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if appointment.UserID == req.UserID {
		// Клиент отменяет свою запись - проверяем окно самостоятельной отмены
		if err := s.checkCancellationWindow(ctx, appointment); err != nil {
			return err
		}
	} else {
		// Сотрудник мастера или админ отменяют без ограничения по времени
		if err := s.checkStaffAccess(ctx, appointment.ProfessionalID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
			return ErrAccessDenied
		}
	}

	// Отменяем запись
	if err := s.appointmentRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus отмечает запись завершённой
// Доступно сотруднику мастера и админу. Отмена выполняется через Cancel.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	// Получаем запись
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (сотрудник мастера или админ)
	if err := s.checkStaffAccess(ctx, appointment.ProfessionalID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Через UpdateStatus разрешено только завершение, отмена идёт через Cancel
	if newStatus != domain.StatusCompleted {
		s.logger.Warn("UpdateStatus: status=%s is not allowed for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: only %q is allowed", ErrInvalidStatus, domain.StatusCompleted)
	}

	if !appointment.CanBeCompleted() {
		s.logger.Warn("UpdateStatus: appointment id=%d cannot be completed, status=%s", appointmentID, appointment.Status)
		return ErrCannotComplete
	}

	// Обновляем статус
	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Вспомогательные методы

// checkCancellationWindow проверяет, что до начала записи остаётся
// не меньше окна самостоятельной отмены из правил салона
func (s *Service) checkCancellationWindow(ctx context.Context, appointment *domain.Appointment) error {
	rules, err := s.rulesRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, rulesRepo.ErrRulesNotFound) {
			s.logger.Error("checkCancellationWindow: failed to get booking rules: %v", err)
			return fmt.Errorf("%w: failed to get booking rules: %v", ErrInternal, err)
		}
		rules = domain.DefaultBookingRules()
	}

	canCancel, err := domain.CanCancelOnline(appointment.Date, appointment.StartTime,
		s.timeProvider.Now(), rules.CancellationLimitHours)
	if err != nil {
		s.logger.Error("checkCancellationWindow: failed to check window for appointment id=%d: %v",
			appointment.ID, err)
		return fmt.Errorf("%w: failed to check cancellation window: %v", ErrInternal, err)
	}

	if !canCancel {
		s.logger.Warn("checkCancellationWindow: appointment id=%d is within %d hours of start",
			appointment.ID, rules.CancellationLimitHours)
		return ErrOutsideCancellationWindow
	}

	return nil
}

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Клиент видит свою запись, сотрудник - записи своего мастера, админ - любые
func (s *Service) checkUserAccess(ctx context.Context, appointment *domain.Appointment, userID int64) error {
	// Если пользователь владелец записи - доступ разрешён
	if appointment.UserID == userID {
		return nil
	}

	if err := s.checkStaffAccess(ctx, appointment.ProfessionalID, userID); err != nil {
		// Ошибка уже залогирована в checkStaffAccess
		return ErrAccessDenied
	}

	return nil
}

// checkStaffAccess проверяет, что пользователь - админ или сотрудник, закреплённый за мастером
func (s *Service) checkStaffAccess(ctx context.Context, professionalID int64, userID int64) error {
	user, err := s.directoryClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			s.logger.Warn("checkStaffAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkStaffAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkStaffAccess - failed to get user: %v", ErrInternal, err)
	}

	if user.Role == directory.RoleAdmin {
		s.logger.Info("checkStaffAccess: user=%d is admin", userID)
		return nil
	}

	if user.IsStaffOf(professionalID) {
		s.logger.Info("checkStaffAccess: user=%d is staff of professional=%d", userID, professionalID)
		return nil
	}

	s.logger.Warn("checkStaffAccess: user=%d has no access to professional=%d", userID, professionalID)
	return ErrAccessDenied
}
