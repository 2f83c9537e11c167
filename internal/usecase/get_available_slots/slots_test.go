package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc1971451-arch/paulo-jorge2/internal/domain"
	"github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

// Понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func testProfessional() *directory.Professional {
	return &directory.Professional{
		ID:          1,
		Name:        "Paulo",
		ServiceIDs:  []int64{1, 2},
		WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		StartTime:   "09:00",
		EndTime:     "19:00",
	}
}

func testRules() *domain.BookingRules {
	return domain.DefaultBookingRules()
}

func testAppointment(start, end string) *domain.Appointment {
	return &domain.Appointment{
		ID:             100,
		UserID:         10,
		ProfessionalID: 1,
		Date:           testDate,
		StartTime:      types.TimeString(start),
		EndTime:        types.TimeString(end),
		Status:         domain.StatusConfirmed,
	}
}

func slotStarts(slots []Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartTime.String()
	}
	return starts
}

func TestComputeAvailableSlots_EmptyDay(t *testing.T) {
	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, testDate, nil)
	require.NoError(t, err)

	// 09:00-12:00 до обеда, 14:00-18:00 после.
	// 12:30 выпадает из-за буфера (12:30+30+10 = 13:10 > 13:00),
	// 18:30 не помещается до закрытия (18:30+30+10 = 19:10 > 19:00).
	expected := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
	}
	assert.Equal(t, expected, slotStarts(slots))
}

func TestComputeAvailableSlots_BufferOnCandidateTailOnly(t *testing.T) {
	// Запись 10:00-10:30. Кандидат 09:30-10:00 с буфером тянется до 10:10 и конфликтует.
	// Кандидат 10:30 начинается ровно в конец записи и допустим: буфер записи не добавляется.
	apps := []*domain.Appointment{testAppointment("10:00", "10:30")}

	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, testDate, apps)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Contains(t, starts, "09:00")
	assert.NotContains(t, starts, "09:30")
	assert.NotContains(t, starts, "10:00")
	assert.Contains(t, starts, "10:30")
}

func TestComputeAvailableSlots_NonWorkingDay(t *testing.T) {
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)

	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, sunday, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_CancelledIgnored(t *testing.T) {
	app := testAppointment("10:00", "10:30")
	app.Status = domain.StatusCancelled

	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, testDate, []*domain.Appointment{app})
	require.NoError(t, err)
	assert.Contains(t, slotStarts(slots), "10:00")
}

func TestComputeAvailableSlots_OtherDateIgnored(t *testing.T) {
	app := testAppointment("10:00", "10:30")
	app.Date = testDate.AddDate(0, 0, 1)

	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, testDate, []*domain.Appointment{app})
	require.NoError(t, err)
	assert.Contains(t, slotStarts(slots), "10:00")
}

func TestComputeAvailableSlots_CompletedBlocks(t *testing.T) {
	app := testAppointment("10:00", "10:30")
	app.Status = domain.StatusCompleted

	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, testDate, []*domain.Appointment{app})
	require.NoError(t, err)
	assert.NotContains(t, slotStarts(slots), "10:00")
}

func TestComputeAvailableSlots_WindowClampedToSalonHours(t *testing.T) {
	prof := testProfessional()
	prof.StartTime = "08:00"
	prof.EndTime = "20:00"

	slots, err := computeAvailableSlots(prof, testRules(), 30, testDate, nil)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Equal(t, "09:00", starts[0])
	assert.Equal(t, "18:00", starts[len(starts)-1])
}

func TestComputeAvailableSlots_LongService(t *testing.T) {
	// 90 минут: кандидат 11:30 тянется с буфером до 13:10 и пересекает обед
	slots, err := computeAvailableSlots(testProfessional(), testRules(), 90, testDate, nil)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Contains(t, starts, "11:00")
	assert.NotContains(t, starts, "11:30")
	assert.Contains(t, starts, "14:00")
	// 17:30+90+10 = 19:10, не помещается
	assert.Equal(t, "17:00", starts[len(starts)-1])
}

func TestComputeAvailableSlots_FullySaturated(t *testing.T) {
	apps := []*domain.Appointment{
		testAppointment("09:00", "12:30"),
		testAppointment("14:00", "19:00"),
	}

	slots, err := computeAvailableSlots(testProfessional(), testRules(), 30, testDate, apps)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_Deterministic(t *testing.T) {
	apps := []*domain.Appointment{testAppointment("11:00", "11:45")}

	first, err := computeAvailableSlots(testProfessional(), testRules(), 45, testDate, apps)
	require.NoError(t, err)
	second, err := computeAvailableSlots(testProfessional(), testRules(), 45, testDate, apps)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeAvailableSlots_NoLunchBreak(t *testing.T) {
	rules := testRules()
	rules.LunchStart = ""
	rules.LunchEnd = ""

	slots, err := computeAvailableSlots(testProfessional(), rules, 30, testDate, nil)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.Contains(t, starts, "13:00")
	assert.Contains(t, starts, "13:30")
}

func TestComputeAvailableSlots_CustomGranularity(t *testing.T) {
	rules := testRules()
	rules.SlotGranularityMinutes = 60

	slots, err := computeAvailableSlots(testProfessional(), rules, 30, testDate, nil)
	require.NoError(t, err)

	expected := []string{
		"09:00", "10:00", "11:00", "12:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}
	assert.Equal(t, expected, slotStarts(slots))
}
