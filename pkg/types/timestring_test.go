package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:30"},
		{name: "valid midnight", input: "00:00"},
		{name: "valid last minute", input: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "no colon", input: "0930", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "with seconds", input: "12:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "01:00", want: 60},
		{input: "12:30", want: 750},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		got, err := tt.input.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Minutes(%s)", tt.input)
	}

	_, err := TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		input   TimeString
		minutes int
		want    TimeString
	}{
		{input: "10:00", minutes: 30, want: "10:30"},
		{input: "10:45", minutes: 30, want: "11:15"},
		{input: "23:30", minutes: 60, want: "00:30"},
		{input: "00:00", minutes: 1440, want: "00:00"},
	}

	for _, tt := range tests {
		got, err := tt.input.AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %d min", tt.input, tt.minutes)
	}
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("00:00"), NewTimeStringFromMinutes(0))
	assert.Equal(t, TimeString("12:30"), NewTimeStringFromMinutes(750))
	// Значения за пределами суток нормализуются
	assert.Equal(t, TimeString("01:30"), NewTimeStringFromMinutes(1530))
	assert.Equal(t, TimeString("23:30"), NewTimeStringFromMinutes(-30))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 18, 5, 42, 0, time.UTC))
	assert.Equal(t, TimeString("18:05"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}
