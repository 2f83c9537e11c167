package create_appointment

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID         int64            // ID клиента
	ProfessionalID int64            // ID мастера
	ServiceIDs     []int64          // ID выбранных услуг (корзина)
	Date           time.Time        // Дата записи (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	UserID          int64            // ID клиента
	ProfessionalID  int64            // ID мастера
	ServiceIDs      []int64          // ID услуг
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания (без буфера)
	DurationMinutes int              // Суммарная длительность услуг
	Status          string           // Статус записи

	// Снимок данных услуг на момент записи
	ServiceNames string  // Названия услуг через запятую
	TotalPrice   float64 // Суммарная цена

	Notes *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
