package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers"
	"github.com/jc1971451-arch/paulo-jorge2/internal/api/middleware"
	getAvailableSlots "github.com/jc1971451-arch/paulo-jorge2/internal/usecase/get_available_slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgMissingServiceIDs     = "список услуг обязателен"
	msgInvalidServiceIDs     = "некорректный список услуг, ожидается serviceIds=1,2"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProfessionalNotFound  = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
	msgServiceInactive       = "услуга недоступна"
	msgServiceNotOffered     = "мастер не оказывает выбранную услугу"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/available-slots
// Query params: serviceIds (required, "1,2"), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем serviceIds из query параметров
	serviceIDsStr := r.URL.Query().Get("serviceIds")
	if serviceIDsStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing service IDs")
		handlers.RespondBadRequest(w, msgMissingServiceIDs)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid service IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceIDs)
		return
	}

	// Маршрут публичный, userID попадает в запрос только для логирования
	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, professionalID, serviceIDs, dateStr)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Professional not found: professional_id=%d", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/available-slots - Service not found: professional_id=%d, service_ids=%s",
				professionalID, serviceIDsStr)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceInactive):
			h.logger.Warn("GET /professionals/{id}/available-slots - Service inactive: professional_id=%d, service_ids=%s",
				professionalID, serviceIDsStr)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, getAvailableSlots.ErrServiceNotOffered):
			h.logger.Warn("GET /professionals/{id}/available-slots - Service not offered: professional_id=%d, service_ids=%s",
				professionalID, serviceIDsStr)
			handlers.RespondBadRequest(w, msgServiceNotOffered)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidServiceIDs)

		default:
			h.logger.Error("GET /professionals/{id}/available-slots - Failed to get slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /professionals/{id}/available-slots - Slots retrieved successfully: professional_id=%d, date=%s, slots_count=%d",
		professionalID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
