// internal/service/progress_test.go
package service

import (
	"testing"

	"supplement_keep/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDaysTracked(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		end       model.EndBound
		today     string
		want      int
	}{
		{
			name:      "正常系: 無期限は今日までの日数",
			startDate: "2024-01-01",
			end:       model.Indefinite(),
			today:     "2024-01-10",
			want:      10,
		},
		{
			name:      "正常系: 開始日当日は1日",
			startDate: "2024-01-10",
			end:       model.Indefinite(),
			today:     "2024-01-10",
			want:      1,
		},
		{
			name:      "正常系: 終了日を過ぎても窓は伸びない",
			startDate: "2024-01-01",
			end:       model.BoundedUntil("2024-01-10"),
			today:     "2024-06-01",
			want:      10,
		},
		{
			name:      "正常系: 終了日が未来なら今日まで",
			startDate: "2024-01-01",
			end:       model.BoundedUntil("2024-12-31"),
			today:     "2024-01-05",
			want:      5,
		},
		{
			name:      "正常系: 開始前は0",
			startDate: "2024-06-01",
			end:       model.Indefinite(),
			today:     "2024-01-01",
			want:      0,
		},
		{
			name:      "異常系: 不正な開始日は0",
			startDate: "not-a-date",
			end:       model.Indefinite(),
			today:     "2024-01-01",
			want:      0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysTracked(tt.startDate, tt.end, tt.today))
		})
	}
}

func TestAdherenceProgress(t *testing.T) {
	tests := []struct {
		name            string
		taken           int
		daysTracked     int
		schedulesPerDay int
		want            float64
	}{
		{name: "正常系: 半分摂取", taken: 5, daysTracked: 10, schedulesPerDay: 1, want: 0.5},
		{name: "正常系: 全回摂取", taken: 20, daysTracked: 10, schedulesPerDay: 2, want: 1.0},
		// 分母は継続日数 × スケジュール数
		{name: "正常系: 複数スケジュールで分母が増える", taken: 10, daysTracked: 10, schedulesPerDay: 2, want: 0.5},
		{name: "正常系: 分母0は0", taken: 3, daysTracked: 0, schedulesPerDay: 1, want: 0},
		{name: "正常系: スケジュール0件は0", taken: 3, daysTracked: 10, schedulesPerDay: 0, want: 0},
		{name: "正常系: 1.0を超えない", taken: 20, daysTracked: 10, schedulesPerDay: 1, want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AdherenceProgress(tt.taken, tt.daysTracked, tt.schedulesPerDay), 1e-9)
		})
	}
}

func TestDayProgress(t *testing.T) {
	assert.InDelta(t, 0.5, DayProgress(1, 2), 1e-9)
	assert.InDelta(t, 0.0, DayProgress(0, 2), 1e-9)
	assert.InDelta(t, 0.0, DayProgress(1, 0), 1e-9)
}

func TestDayStreak(t *testing.T) {
	tests := []struct {
		name       string
		takenDates []string
		today      string
		want       int
	}{
		{
			name:       "正常系: 今日まで3日連続",
			takenDates: []string{"2024-03-08", "2024-03-09", "2024-03-10"},
			today:      "2024-03-10",
			want:       3,
		},
		{
			name:       "正常系: 昨日で終わる連続も有効",
			takenDates: []string{"2024-03-08", "2024-03-09"},
			today:      "2024-03-10",
			want:       2,
		},
		{
			name:       "正常系: 一昨日で途切れたら0",
			takenDates: []string{"2024-03-07", "2024-03-08"},
			today:      "2024-03-10",
			want:       0,
		},
		{
			name:       "正常系: 途中の欠落は連続を切る",
			takenDates: []string{"2024-03-05", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"},
			today:      "2024-03-10",
			want:       4,
		},
		{
			name:       "正常系: 記録なしは0",
			takenDates: []string{},
			today:      "2024-03-10",
			want:       0,
		},
		{
			name:       "正常系: 月またぎの連続",
			takenDates: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
			today:      "2024-03-01",
			want:       3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayStreak(tt.takenDates, tt.today))
		})
	}
}

func TestDayBuckets(t *testing.T) {
	t.Run("正常系: 開始から今日まで、摂取日にフラグが立つ", func(t *testing.T) {
		buckets := DayBuckets("2024-03-01", model.Indefinite(), "2024-03-03", []string{"2024-03-02"})
		assert.Len(t, buckets, 3)
		assert.Equal(t, "2024-03-01", buckets[0].Date)
		assert.False(t, buckets[0].IsTaken)
		assert.True(t, buckets[1].IsTaken)
		assert.False(t, buckets[2].IsTaken)
		for _, b := range buckets {
			assert.False(t, b.IsFuture)
		}
	})

	t.Run("正常系: 終了日が未来なら未来日はis_future", func(t *testing.T) {
		buckets := DayBuckets("2024-03-01", model.BoundedUntil("2024-03-05"), "2024-03-03", nil)
		assert.Len(t, buckets, 5)
		assert.False(t, buckets[2].IsFuture) // 2024-03-03 (今日)
		assert.True(t, buckets[3].IsFuture)  // 2024-03-04
		assert.True(t, buckets[4].IsFuture)  // 2024-03-05
	})

	t.Run("正常系: 開始前は空", func(t *testing.T) {
		buckets := DayBuckets("2024-06-01", model.Indefinite(), "2024-03-03", nil)
		assert.Empty(t, buckets)
	})
}
