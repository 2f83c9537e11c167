package create_appointment

import (
	"errors"
	"net/http"

	"github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers"
	"github.com/jc1971451-arch/paulo-jorge2/internal/api/middleware"
	createAppointment "github.com/jc1971451-arch/paulo-jorge2/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidDateTime      = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken            = "выбранный временной слот уже занят"
	msgProfessionalNotFound = "мастер не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgServiceInactive      = "услуга недоступна"
	msgServiceNotOffered    = "мастер не оказывает выбранную услугу"
	msgInvalidDate          = "некорректная дата записи"
	msgTimeInPast           = "время записи уже прошло"
	msgNonWorkingDay        = "мастер не принимает в выбранный день"
	msgOutsideWorkingHours  = "слот выходит за рабочие часы"
	msgInvalidTimeSlot      = "некорректный временной слот"
	msgLunchOverlap         = "слот пересекается с обеденным перерывом"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%d, professional_id=%d, date=%s, time=%s",
				userID, req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: user_id=%d, service_ids=%v", userID, req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrServiceInactive):
			h.logger.Warn("POST /appointments - Service inactive: user_id=%d, service_ids=%v", userID, req.ServiceIDs)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createAppointment.ErrServiceNotOffered):
			h.logger.Warn("POST /appointments - Service not offered: user_id=%d, professional_id=%d",
				userID, req.ProfessionalID)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrTimeInPast):
			h.logger.Warn("POST /appointments - Time in past: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgTimeInPast)

		case errors.Is(err, createAppointment.ErrNonWorkingDay):
			h.logger.Warn("POST /appointments - Non-working day: professional_id=%d, date=%s",
				req.ProfessionalID, req.Date)
			handlers.RespondBadRequest(w, msgNonWorkingDay)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrLunchOverlap):
			h.logger.Warn("POST /appointments - Lunch overlap: professional_id=%d, time=%s",
				req.ProfessionalID, req.StartTime)
			handlers.RespondBadRequest(w, msgLunchOverlap)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, professional_id=%d, error=%v",
				userID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, professional_id=%d",
		result.ID, userID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
