// internal/timezone/calendar_test.go
package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplement_keep/internal/model"
)

func TestIsValidCivilDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"正常系: 通常の日付", "2024-06-15", true},
		{"正常系: 閏日", "2024-02-29", true},
		{"異常系: 実在しない日付", "2024-02-30", false},
		{"異常系: 非閏年の閏日", "2023-02-29", false},
		{"異常系: 13月", "2024-13-01", false},
		{"異常系: 区切りなし", "20240615", false},
		{"異常系: 時刻付き", "2024-06-15T00:00:00Z", false},
		{"異常系: 空文字列", "", false},
		{"異常系: ゼロ詰めなし", "2024-6-15", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidCivilDate(tc.input))
		})
	}
}

func TestLoadLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	loc := LoadLocation("Asia/Tokyo")
	require.NotNil(t, loc)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestDayBoundaries_RoundTrip(t *testing.T) {
	// 境界の往復特性:
	//   CivilDateOf(start, tz) == d かつ CivilDateOf(end - 1ms, tz) == d
	dates := []string{"2024-01-01", "2024-03-10", "2024-06-15", "2024-11-03", "2024-12-31"}
	zones := []string{"UTC", "Asia/Tokyo", "America/Los_Angeles", "Europe/Berlin", "Pacific/Kiritimati"}

	for _, d := range dates {
		for _, tz := range zones {
			start, end, err := DayBoundaries(d, tz)
			require.NoError(t, err, "date=%s tz=%s", d, tz)
			assert.Equal(t, d, CivilDateOf(start, tz), "start boundary for %s in %s", d, tz)
			assert.Equal(t, d, CivilDateOf(end.Add(-time.Millisecond), tz), "end boundary for %s in %s", d, tz)
			assert.True(t, end.After(start))
		}
	}
}

func TestDayBoundaries_KnownOffsets(t *testing.T) {
	// PST(UTC-8)の2024-01-15は UTC 08:00 開始
	start, end, err := DayBoundaries("2024-01-15", "America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC), end)

	// DST開始日（2024-03-10）は23時間しかない
	start, end, err = DayBoundaries("2024-03-10", "America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestDayBoundaries_InvalidDate(t *testing.T) {
	_, _, err := DayBoundaries("2024-02-30", "UTC")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		tz   string
		want string
	}{
		{"正常系: 翌日", "2024-06-15", 1, "UTC", "2024-06-16"},
		{"正常系: 月またぎ", "2024-01-31", 1, "UTC", "2024-02-01"},
		{"正常系: 閏日またぎ", "2024-02-28", 1, "UTC", "2024-02-29"},
		{"正常系: 負数", "2024-03-01", -1, "UTC", "2024-02-29"},
		{"正常系: DST開始日をまたぐ（春）", "2024-03-09", 1, "America/Los_Angeles", "2024-03-10"},
		{"正常系: DST開始日の翌日", "2024-03-10", 1, "America/Los_Angeles", "2024-03-11"},
		{"正常系: DST終了日をまたぐ（秋）", "2024-11-02", 1, "America/New_York", "2024-11-03"},
		{"正常系: DST終了日の翌日", "2024-11-03", 1, "America/New_York", "2024-11-04"},
		{"正常系: ゼロ日", "2024-06-15", 0, "Asia/Tokyo", "2024-06-15"},
		{"正常系: 年またぎ", "2024-12-31", 1, "Pacific/Kiritimati", "2025-01-01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AddDays(tc.date, tc.n, tc.tz)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := AddDays("bogus", 1, "UTC")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestDaysBetween(t *testing.T) {
	got, err := DaysBetween("2024-01-01", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	got, err = DaysBetween("2024-01-10", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, -9, got)

	got, err = DaysBetween("2024-06-15", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = DaysBetween("2024-02-30", "2024-03-01")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestCivilDateOf(t *testing.T) {
	// UTC 2024-06-15 23:30 は東京では翌日
	instant := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-15", CivilDateOf(instant, "UTC"))
	assert.Equal(t, "2024-06-16", CivilDateOf(instant, "Asia/Tokyo"))
	// 未知のタイムゾーンはUTC扱い
	assert.Equal(t, "2024-06-15", CivilDateOf(instant, "Not/AZone"))
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("08:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("8:00"))
	assert.False(t, IsValidTimeOfDay("morning"))
}
