package domain

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a booked visit to the salon
type Appointment struct {
	ID             int64
	UserID         int64
	ProfessionalID int64
	ServiceIDs     []int64 // заказ может включать несколько услуг
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString // start + суммарная длительность, вычисляется один раз при создании
	DurationMinutes int
	Status          AppointmentStatus

	// Snapshot of service data at booking time.
	// Цены и названия фиксируются при создании и не пересчитываются,
	// если услуга позже меняется в справочнике.
	ServiceNames string
	TotalPrice   float64

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot.
// Завершённая запись остаётся занявшей свой интервал, отменённая - нет.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusConfirmed
}

// CanBeCompleted returns true if the appointment can be marked as completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}

// IsTerminal returns true for statuses with no further transitions
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// StartAt возвращает момент начала записи (дата + время начала)
func (a *Appointment) StartAt() (time.Time, error) {
	return a.StartTime.OnDate(a.Date)
}

// CanCancelOnline проверяет правило окна самостоятельной отмены:
// отмена через приложение разрешена, пока до начала записи остаётся
// не меньше limitHours часов (граница включительно). Вне окна клиент
// направляется на ручной канал отмены, запрет не является ошибкой.
func CanCancelOnline(date time.Time, startTime types.TimeString, now time.Time, limitHours int) (bool, error) {
	startAt, err := startTime.OnDate(date)
	if err != nil {
		return false, err
	}
	return startAt.Sub(now) >= time.Duration(limitHours)*time.Hour, nil
}

// AgendaFilter фильтр для выборки записей профессионала
type AgendaFilter struct {
	ProfessionalID  int64      // Обязательный параметр
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	Status          *AppointmentStatus
	IncludeInactive bool // Включать ли отменённые записи
}
