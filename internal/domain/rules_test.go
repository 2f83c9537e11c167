package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jc1971451-arch/paulo-jorge2/pkg/types"
)

func TestBookingRules_HasLunchBreak(t *testing.T) {
	tests := []struct {
		name  string
		start types.TimeString
		end   types.TimeString
		want  bool
	}{
		{name: "configured window", start: "13:00", end: "14:00", want: true},
		{name: "both empty disables lunch", start: "", end: "", want: false},
		{name: "only start set", start: "13:00", end: "", want: false},
		{name: "inverted window", start: "14:00", end: "13:00", want: false},
		{name: "zero-length window", start: "13:00", end: "13:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := &BookingRules{LunchStart: tt.start, LunchEnd: tt.end}
			assert.Equal(t, tt.want, rules.HasLunchBreak())
		})
	}
}

func TestBookingRules_EffectiveWindow(t *testing.T) {
	rules := &BookingRules{OpeningTime: "09:00", ClosingTime: "19:00"}

	tests := []struct {
		name      string
		profStart types.TimeString
		profEnd   types.TimeString
		wantStart types.TimeString
		wantEnd   types.TimeString
	}{
		{name: "inside salon hours", profStart: "10:00", profEnd: "18:00", wantStart: "10:00", wantEnd: "18:00"},
		{name: "clamped to opening", profStart: "08:00", profEnd: "18:00", wantStart: "09:00", wantEnd: "18:00"},
		{name: "clamped to closing", profStart: "10:00", profEnd: "20:00", wantStart: "10:00", wantEnd: "19:00"},
		{name: "clamped on both ends", profStart: "07:00", profEnd: "22:00", wantStart: "09:00", wantEnd: "19:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := rules.EffectiveWindow(tt.profStart, tt.profEnd)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestDefaultBookingRules(t *testing.T) {
	rules := DefaultBookingRules()

	assert.Equal(t, DefaultLunchStart, rules.LunchStart)
	assert.Equal(t, DefaultLunchEnd, rules.LunchEnd)
	assert.Equal(t, DefaultBufferMinutes, rules.BufferMinutes)
	assert.Equal(t, DefaultCancellationLimitHours, rules.CancellationLimitHours)
	assert.Equal(t, DefaultOpeningTime, rules.OpeningTime)
	assert.Equal(t, DefaultClosingTime, rules.ClosingTime)
	assert.Equal(t, DefaultSlotGranularityMinutes, rules.SlotGranularityMinutes)
	assert.True(t, rules.HasLunchBreak())
}

func TestWeekdayLabel(t *testing.T) {
	// 2026-09-07 - понедельник
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	labels := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	for i, want := range labels {
		assert.Equal(t, want, WeekdayLabel(monday.AddDate(0, 0, i)))
	}
}
