package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

func TestAppointment_StatusPredicates(t *testing.T) {
	tests := []struct {
		status      AppointmentStatus
		active      bool
		cancellable bool
		completable bool
		terminal    bool
	}{
		{status: StatusConfirmed, active: true, cancellable: true, completable: true, terminal: false},
		{status: StatusCancelled, active: false, cancellable: false, completable: false, terminal: true},
		{status: StatusCompleted, active: true, cancellable: false, completable: false, terminal: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Appointment{Status: tt.status}
			assert.Equal(t, tt.active, a.IsActive())
			assert.Equal(t, tt.cancellable, a.CanBeCancelled())
			assert.Equal(t, tt.completable, a.CanBeCompleted())
			assert.Equal(t, tt.terminal, a.IsTerminal())
		})
	}
}

func TestCanCancelOnline(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	startTime := types.TimeString("15:00")

	tests := []struct {
		name       string
		now        time.Time
		limitHours int
		want       bool
	}{
		{
			name:       "well before the window",
			now:        time.Date(2026, 9, 7, 7, 0, 0, 0, time.UTC),
			limitHours: 6,
			want:       true,
		},
		{
			// Граница включительная: ровно limitHours до начала - ещё можно
			name:       "exactly at the limit",
			now:        time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
			limitHours: 6,
			want:       true,
		},
		{
			name:       "one minute past the limit",
			now:        time.Date(2026, 9, 7, 9, 1, 0, 0, time.UTC),
			limitHours: 6,
			want:       false,
		},
		{
			name:       "appointment already started",
			now:        time.Date(2026, 9, 7, 15, 30, 0, 0, time.UTC),
			limitHours: 6,
			want:       false,
		},
		{
			name:       "zero limit allows until start",
			now:        time.Date(2026, 9, 7, 15, 0, 0, 0, time.UTC),
			limitHours: 0,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanCancelOnline(date, startTime, tt.now, tt.limitHours)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanCancelOnline_InvalidStartTime(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := CanCancelOnline(date, "bad", time.Now(), 6)
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
}
