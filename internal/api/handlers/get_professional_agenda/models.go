package get_professional_agenda

import (
	"errors"
	"net/url"
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments/models"
)

var errInvalidDate = errors.New("invalid date format")

// parseAgendaQuery разбирает query-параметры расписания
func parseAgendaQuery(userID, professionalID int64, query url.Values) (*models.GetAgendaRequest, error) {
	req := &models.GetAgendaRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
	}

	if startDate := query.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return nil, errInvalidDate
		}
		req.StartDate = &parsed
	}

	if endDate := query.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return nil, errInvalidDate
		}
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req, nil
}
