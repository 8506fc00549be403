// internal/timezone/calendar.go
//
// 瞬間（絶対時刻）とユーザーのタイムゾーンにおける暦日（YYYY-MM-DD）を相互変換する
// 純粋関数群です。「今日かどうか」の判定はすべてここを経由し、UTCの今日と
// ローカルの対象日を混ぜる事故を防ぐため、全関数がタイムゾーンを明示的に受け取ります。
// 現在時刻を内部で読むことはありません。
package timezone

import (
	"regexp"
	"time"

	"supplement_keep/internal/model"
)

const civilDateLayout = "2006-01-02"

var (
	civilDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// LoadLocation はIANAタイムゾーン名を解決します。
// 空文字列や未知の名前はUTCにフォールバックします（システム全体の既定）。
func LoadLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsValidCivilDate は YYYY-MM-DD 形式かつ実在する暦日かどうかを返します
// （2024-02-30 のような日付は拒否されます）。
func IsValidCivilDate(s string) bool {
	if !civilDatePattern.MatchString(s) {
		return false
	}
	t, err := time.ParseInLocation(civilDateLayout, s, time.UTC)
	if err != nil {
		return false
	}
	// time.Parse は 2024-02-30 を 2024-03-01 に正規化してしまうため、
	// 往復させて一致することを確認する
	return t.Format(civilDateLayout) == s
}

// CivilDateOf は瞬間を指定タイムゾーンの暦日文字列に変換します。
func CivilDateOf(instant time.Time, tz string) string {
	return instant.In(LoadLocation(tz)).Format(civilDateLayout)
}

// Today は now が指すタイムゾーン上の「今日」を返します。
func Today(now time.Time, tz string) string {
	return CivilDateOf(now, tz)
}

// DayBoundaries は暦日に対応するUTC上の区間 [start, end) を返します。
// start は当日のローカル 00:00:00、end は翌日のローカル 00:00:00 です。
// 「このイベントは今日の範囲内か」の判定はすべてこの区間で行います。
func DayBoundaries(date, tz string) (time.Time, time.Time, error) {
	if !IsValidCivilDate(date) {
		return time.Time{}, time.Time{}, model.ErrInvalidInput
	}
	loc := LoadLocation(tz)
	t, err := time.ParseInLocation(civilDateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, model.ErrInvalidInput
	}
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC(), nil
}

// AddDays は暦日に日数を加算します。DST切り替え日の前後で日付が1日ずれないよう、
// 当日のローカル正午を基準点にしてから加算し、結果の暦日を導出し直します。
func AddDays(date string, n int, tz string) (string, error) {
	if !IsValidCivilDate(date) {
		return "", model.ErrInvalidInput
	}
	loc := LoadLocation(tz)
	t, err := time.ParseInLocation(civilDateLayout, date, time.UTC)
	if err != nil {
		return "", model.ErrInvalidInput
	}
	y, m, d := t.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, loc)
	shifted := noon.Add(time.Duration(n) * 24 * time.Hour)
	return shifted.In(loc).Format(civilDateLayout), nil
}

// DaysBetween は2つの暦日の差（b - a, 日数）を返します。
// 暦日どうしの演算なのでタイムゾーンには依存しません。
func DaysBetween(a, b string) (int, error) {
	if !IsValidCivilDate(a) || !IsValidCivilDate(b) {
		return 0, model.ErrInvalidInput
	}
	ta, _ := time.ParseInLocation(civilDateLayout, a, time.UTC)
	tb, _ := time.ParseInLocation(civilDateLayout, b, time.UTC)
	return int(tb.Sub(ta).Hours() / 24), nil
}

// IsValidTimeOfDay は HH:MM 形式（ゼロ詰め・24時間表記）の時刻文字列かどうかを返します。
func IsValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}
