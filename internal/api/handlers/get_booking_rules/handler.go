package get_booking_rules

import (
	"net/http"

	"github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /rules - Failed to fetch rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rules - Rules fetched successfully")
	handlers.RespondJSON(w, http.StatusOK, resp)
}
