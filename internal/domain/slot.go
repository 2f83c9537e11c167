package domain

import "github.com/jc1971451-arch/paulo-jorge2/pkg/types"

// AvailableSlot represents a start time open for booking
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int // суммарная длительность запрошенных услуг, без буфера
}

// EndTime возвращает время окончания услуги (буфер не входит)
func (s *AvailableSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
