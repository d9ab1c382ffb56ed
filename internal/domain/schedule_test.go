package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alurfia/ALK-BookingService/pkg/types"
)

func TestToMinutes(t *testing.T) {
	const close = types.TimeString("01:00")

	tests := []struct {
		name  string
		input types.TimeString
		want  int
	}{
		{name: "afternoon stays same day", input: "12:00", want: 720},
		{name: "evening stays same day", input: "23:30", want: 1410},
		{name: "midnight rolls over", input: "00:00", want: 1440},
		{name: "half past midnight rolls over", input: "00:30", want: 1470},
		{name: "closing instant rolls over", input: "01:00", want: 1500},
		{name: "just after close stays same day", input: "01:30", want: 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.input, close)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ToMinutes("9:00", close)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = ToMinutes("12:00", "1:00")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

// Момент закрытия на числовой оси всегда отстоит от открытия на сутки вперед
func TestToMinutes_CloseRollsToNextDay(t *testing.T) {
	pairs := []struct {
		open  types.TimeString
		close types.TimeString
	}{
		{open: "12:00", close: "01:00"},
		{open: "18:00", close: "02:00"},
		{open: "15:00", close: "00:00"},
	}

	for _, p := range pairs {
		openMin, err := ToMinutes(p.open, p.close)
		require.NoError(t, err)
		closeMin, err := ToMinutes(p.close, p.close)
		require.NoError(t, err)

		openRaw, _ := p.open.Minutes()
		closeRaw, _ := p.close.Minutes()
		assert.Equal(t, openRaw, openMin, "open=%s close=%s", p.open, p.close)
		assert.Equal(t, closeRaw+MinutesPerDay, closeMin, "open=%s close=%s", p.open, p.close)
		assert.Greater(t, closeMin, openMin)
	}
}

func TestIntervalRange(t *testing.T) {
	const close = types.TimeString("01:00")

	tests := []struct {
		name      string
		start     types.TimeString
		end       types.TimeString
		wantStart int
		wantEnd   int
	}{
		{name: "regular evening interval", start: "20:00", end: "21:30", wantStart: 1200, wantEnd: 1290},
		{name: "interval crossing midnight", start: "23:00", end: "00:30", wantStart: 1380, wantEnd: 1470},
		{name: "interval fully past midnight", start: "00:00", end: "01:00", wantStart: 1440, wantEnd: 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := IntervalRange(tt.start, tt.end, close)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Greater(t, end, start)
		})
	}
}

func TestGenerateSlots_OvernightWindow(t *testing.T) {
	slots, err := GenerateSlots("12:00", "01:00", 30)
	require.NoError(t, err)

	// 12:00..01:00 с шагом 30 минут: 26 меток включая границу закрытия
	require.Len(t, slots, 26)
	assert.Equal(t, types.TimeString("12:00"), slots[0])
	assert.Equal(t, types.TimeString("23:30"), slots[23])
	assert.Equal(t, types.TimeString("00:00"), slots[24])
	assert.Equal(t, types.TimeString("01:00"), slots[25])
}

func TestGenerateSlots_StrictlyIncreasing(t *testing.T) {
	const close = types.TimeString("02:00")

	slots, err := GenerateSlots("18:00", close, 30)
	require.NoError(t, err)

	prev := -1
	for _, s := range slots {
		m, err := ToMinutes(s, close)
		require.NoError(t, err)
		assert.Greater(t, m, prev, "slot %s", s)
		prev = m
	}

	openMin, _ := types.TimeString("18:00").Minutes()
	closeMin, _ := close.Minutes()
	assert.Len(t, slots, (closeMin+MinutesPerDay-openMin)/30+1)
}

func TestGenerateSlots_SameDayWindow(t *testing.T) {
	slots, err := GenerateSlots("10:00", "12:00", 60)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "11:00", "12:00"}, slots)
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	first, err := GenerateSlots("12:00", "01:00", 30)
	require.NoError(t, err)
	second, err := GenerateSlots("12:00", "01:00", 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	_, err := GenerateSlots("12:00", "01:00", 0)
	assert.ErrorIs(t, err, ErrInvalidSlotStep)

	_, err = GenerateSlots("12:00", "01:00", -30)
	assert.ErrorIs(t, err, ErrInvalidSlotStep)

	_, err = GenerateSlots("noon", "01:00", 30)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = GenerateSlots("12:00", "25:00", 30)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
