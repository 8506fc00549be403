package service

import (
	"supplement_keep/internal/model"
	"supplement_keep/internal/timezone"
)

// 進捗計算はすべて純粋関数。現在時刻や DB には触れず、
// 呼び出し側が解決した「今日」（ユーザーのタイムゾーン基準）を受け取ります。
// 引数の日付は検証済みの YYYY-MM-DD を前提とし、不正な日付は 0 扱いにします。

// DaysTracked は継続日数を返します。min(終了日, 今日) − 開始日 + 1。
// 終了日を過ぎても窓は伸びません。開始前なら 0 です。
func DaysTracked(startDate string, end model.EndBound, today string) int {
	upper := end.ClampUpper(today)
	diff, err := timezone.DaysBetween(startDate, upper)
	if err != nil {
		return 0
	}
	days := diff + 1
	if days < 0 {
		return 0
	}
	return days
}

// AdherenceProgress は累計の摂取率（0.0〜1.0）を返します。
// 分母は継続日数 × 1日あたりのスケジュール数（＝摂取可能な総回数）。
// 分母が 0 のときは 0 を返します。
func AdherenceProgress(taken int, daysTracked int, schedulesPerDay int) float64 {
	totalPossible := daysTracked * schedulesPerDay
	if totalPossible <= 0 {
		return 0
	}
	progress := float64(taken) / float64(totalPossible)
	if progress > 1 {
		return 1
	}
	return progress
}

// DayProgress は1日単位の達成率を返します。
func DayProgress(takenToday int, scheduledToday int) float64 {
	if scheduledToday <= 0 {
		return 0
	}
	return float64(takenToday) / float64(scheduledToday)
}

// DayStreak は今日または昨日で終わる連続摂取日数を返します。
// takenDates は YYYY-MM-DD の昇順（重複なし）。
// 直近の記録が一昨日以前なら連続は途切れたとみなし 0 を返します。
func DayStreak(takenDates []string, today string) int {
	if len(takenDates) == 0 {
		return 0
	}
	latest := takenDates[len(takenDates)-1]
	gap, err := timezone.DaysBetween(latest, today)
	if err != nil || gap < 0 || gap > 1 {
		return 0
	}
	streak := 1
	for i := len(takenDates) - 2; i >= 0; i-- {
		diff, err := timezone.DaysBetween(takenDates[i], takenDates[i+1])
		if err != nil || diff != 1 {
			break
		}
		streak++
	}
	return streak
}

// DayBuckets は詳細画面用に、開始日から max(終了日, 今日) までの
// 暦日ごとの摂取状況を返します。today より先の日は is_future を立てて返します
// （クライアント側でグレー表示するため）。
func DayBuckets(startDate string, end model.EndBound, today string, takenDates []string) []model.DayBucket {
	upper := today
	if d, bounded := end.Date(); bounded && d > today {
		upper = d
	}
	diff, err := timezone.DaysBetween(startDate, upper)
	if err != nil {
		return []model.DayBucket{}
	}
	total := diff + 1
	if total <= 0 {
		return []model.DayBucket{}
	}

	taken := make(map[string]struct{}, len(takenDates))
	for _, d := range takenDates {
		taken[d] = struct{}{}
	}

	buckets := make([]model.DayBucket, 0, total)
	for i := 0; i < total; i++ {
		date, err := timezone.AddDays(startDate, i, "UTC")
		if err != nil {
			break
		}
		_, isTaken := taken[date]
		buckets = append(buckets, model.DayBucket{
			Date:     date,
			IsTaken:  isTaken,
			IsFuture: date > today,
		})
	}
	return buckets
}
