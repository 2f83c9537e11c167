package get_available_slots

import (
	"time"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID         int64     // ID пользователя (для логирования, не влияет на результат)
	ProfessionalID int64     // ID мастера
	ServiceIDs     []int64   // ID выбранных услуг (корзина)
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ProfessionalID  int64     // ID мастера
	ServiceIDs      []int64   // ID запрошенных услуг
	DurationMinutes int       // Суммарная длительность выбранных услуг
	Slots           []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах (без буфера)
}
