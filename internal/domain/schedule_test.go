package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev4ox/anti-cafe-reservation/pkg/ptr"
	"github.com/dev4ox/anti-cafe-reservation/pkg/types"
)

func openWeekly(day int, open, close types.TimeString) *WeeklySchedule {
	return &WeeklySchedule{
		DayOfWeek: day,
		IsOpen:    true,
		OpenTime:  ptr.Ptr(open),
		CloseTime: ptr.Ptr(close),
	}
}

func TestResolveWindowWeeklyFallback(t *testing.T) {
	weekly := openWeekly(0, "10:00", "22:00")

	window := ResolveWindow(nil, weekly)
	require.NotNil(t, window)
	assert.Equal(t, types.TimeString("10:00"), window.OpenTime)
	assert.Equal(t, types.TimeString("22:00"), window.CloseTime)
}

func TestResolveWindowSpecialDayOverrides(t *testing.T) {
	weekly := openWeekly(0, "10:00", "22:00")

	// Закрытый особый день перекрывает открытый будничный график.
	closed := &SpecialDay{IsOpen: false}
	assert.Nil(t, ResolveWindow(closed, weekly))

	// Открытый особый день задаёт своё окно целиком, без смешивания.
	open := &SpecialDay{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(types.TimeString("12:00")),
		CloseTime: ptr.Ptr(types.TimeString("18:00")),
	}
	window := ResolveWindow(open, weekly)
	require.NotNil(t, window)
	assert.Equal(t, types.TimeString("12:00"), window.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), window.CloseTime)
}

func TestResolveWindowMalformedEntries(t *testing.T) {
	weekly := openWeekly(0, "10:00", "22:00")

	// Особый день открыт, но без времени: считается закрытым.
	malformed := &SpecialDay{IsOpen: true, OpenTime: ptr.Ptr(types.TimeString("12:00"))}
	assert.Nil(t, ResolveWindow(malformed, weekly))

	// Будничный график открыт без времени: закрыто.
	assert.Nil(t, ResolveWindow(nil, &WeeklySchedule{IsOpen: true}))

	// Записи нет вовсе: закрыто.
	assert.Nil(t, ResolveWindow(nil, nil))
}

func TestWorkingWindowContains(t *testing.T) {
	w := &WorkingWindow{OpenTime: "10:00", CloseTime: "22:00"}

	// Границы включительно: начало в открытие и конец ровно в закрытие допустимы.
	assert.True(t, w.Contains("10:00", "11:00"))
	assert.True(t, w.Contains("21:00", "22:00"))
	assert.False(t, w.Contains("09:00", "10:00"))
	assert.False(t, w.Contains("21:30", "22:30"))
}

func TestDayOfWeekFromDate(t *testing.T) {
	// 2026-03-02 это понедельник
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DayOfWeekFromDate(monday))

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, DayOfWeekFromDate(sunday))
}

func TestSettingsDefaultsAndDurations(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, []int{60, 120, 180, 240}, s.SlotDurationChoices)
	assert.Equal(t, DefaultMinNoticeMinutes, s.MinNoticeMinutes)
	assert.False(t, s.DepositRequired())

	assert.True(t, s.IsAllowedDuration(120))
	assert.False(t, s.IsAllowedDuration(90))
}
