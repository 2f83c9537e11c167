package domain

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// Default booking rules
const (
	DefaultLunchStart             = types.TimeString("13:00")
	DefaultLunchEnd               = types.TimeString("14:00")
	DefaultBufferMinutes          = 10
	DefaultCancellationLimitHours = 6
	DefaultOpeningTime            = types.TimeString("09:00")
	DefaultClosingTime            = types.TimeString("19:00")
	DefaultSlotGranularityMinutes = 30
)

// Business validation constants
const (
	MinSlotGranularityMinutes   = 5
	MaxSlotGranularityMinutes   = 120
	MinBufferMinutes            = 0
	MaxBufferMinutes            = 60
	MinCancellationLimitHours   = 0
	MaxCancellationLimitHours   = 72
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxServicesPerAppointment   = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот.
// Используется при фильтрации записей для подсчёта доступности.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusConfirmed,
	StatusCompleted,
}

// weekdayLabels метки дней недели в том виде, в каком их отдаёт справочник
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

// WeekdayLabel возвращает метку дня недели для даты
func WeekdayLabel(date time.Time) string {
	return weekdayLabels[date.Weekday()]
}
