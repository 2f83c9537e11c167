package directory

// Роли пользователей в справочнике
const (
	RoleClient = "client"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

// Professional модель мастера из справочника салона
type Professional struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	ServiceIDs  []int64  `json:"service_ids"`
	WorkingDays []string `json:"working_days"` // метки monday..sunday
	StartTime   string   `json:"start_time"`   // "HH:MM"
	EndTime     string   `json:"end_time"`     // "HH:MM"
	Image       *string  `json:"image,omitempty"`
}

// WorksOn проверяет, принимает ли мастер в день с указанной меткой
func (p *Professional) WorksOn(weekdayLabel string) bool {
	for _, d := range p.WorkingDays {
		if d == weekdayLabel {
			return true
		}
	}
	return false
}

// Offers проверяет, оказывает ли мастер услугу
func (p *Professional) Offers(serviceID int64) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Service модель услуги из справочника салона
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price,omitempty"` // 2 знака после запятой
	DurationMinutes int      `json:"duration_minutes"`
	Active          bool     `json:"active"`
	Image           *string  `json:"image,omitempty"`
}

// User модель пользователя из справочника
type User struct {
	ID             int64   `json:"id"`
	DisplayName    string  `json:"display_name"`
	Role           string  `json:"role"`
	ProfessionalID *int64  `json:"professional_id,omitempty"` // связь сотрудника с мастером
	Phone          *string `json:"phone,omitempty"`
}

// IsStaffOf проверяет, что пользователь - сотрудник, закреплённый за мастером
func (u *User) IsStaffOf(professionalID int64) bool {
	return u.Role == RoleStaff && u.ProfessionalID != nil && *u.ProfessionalID == professionalID
}

// ErrorResponse модель ошибки от справочника
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
