package get_professional_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers"
	"github.com/jc1971451-arch/paulo-jorge2/internal/api/middleware"
	"github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments"
)

const (
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgUserNotFound          = "пользователь не найден"
	msgInvalidFilter         = "некорректные параметры фильтра"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/agenda?startDate=2026-09-07&endDate=2026-09-13&status=confirmed&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/agenda - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /professionals/{id}/agenda - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := parseAgendaQuery(userID, professionalID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/agenda - Invalid query: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.service.GetProfessionalAgenda(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /professionals/{id}/agenda - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrUserNotFound):
			h.logger.Warn("GET /professionals/{id}/agenda - User not found: user_id=%d", userID)
			handlers.RespondForbidden(w, msgUserNotFound)

		case errors.Is(err, appointments.ErrInvalidInput), errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("GET /professionals/{id}/agenda - Invalid filter: professional_id=%d", professionalID)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /professionals/{id}/agenda - Failed to fetch agenda: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/agenda - Fetched %d appointments: professional_id=%d, user_id=%d",
		len(resp.Appointments), professionalID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
