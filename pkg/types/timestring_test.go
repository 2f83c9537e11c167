package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		want    int
		wantErr bool
	}{
		{name: "midnight", value: "00:00", want: 0},
		{name: "morning", value: "09:30", want: 570},
		{name: "end of day", value: "23:59", want: 1439},
		{name: "empty", value: "", wantErr: true},
		{name: "out of range hour", value: "24:00", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.Minutes()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   TimeString
		minutes int
		want    TimeString
		wantErr error
	}{
		{name: "simple add", value: "09:00", minutes: 30, want: "09:30"},
		{name: "hour rollover", value: "09:45", minutes: 30, want: "10:15"},
		{name: "zero", value: "13:00", minutes: 0, want: "13:00"},
		{name: "negative within day", value: "10:00", minutes: -30, want: "09:30"},
		{name: "midnight overflow", value: "23:45", minutes: 30, wantErr: ErrDayOverflow},
		{name: "negative underflow", value: "00:10", minutes: -30, wantErr: ErrDayOverflow},
		{name: "invalid source", value: "xx:yy", minutes: 10, wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.value.AddMinutes(tt.minutes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	// Строковое сравнение "HH:MM" совпадает с хронологическим
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("09:59").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))

	// Границы строгие: равные значения не раньше и не позже друг друга
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 14, 30, 0, 0, time.UTC), got)

	_, err = TimeString("bad").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromMinutes(t *testing.T) {
	got, err := FromMinutes(570)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	_, err = FromMinutes(-1)
	assert.ErrorIs(t, err, ErrDayOverflow)

	_, err = FromMinutes(1440)
	assert.ErrorIs(t, err, ErrDayOverflow)
}

func TestTimeString_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    TimeString
		wantErr bool
	}{
		{name: "postgres time with seconds", src: "14:30:00", want: "14:30"},
		{name: "plain HH:MM", src: "09:00", want: "09:00"},
		{name: "bytes", src: []byte("18:45:00"), want: "18:45"},
		{name: "time.Time", src: time.Date(2026, 9, 7, 11, 15, 0, 0, time.UTC), want: "11:15"},
		{name: "nil resets", src: nil, want: ""},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts TimeString
			err := ts.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
