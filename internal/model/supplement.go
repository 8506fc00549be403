// internal/model/supplement.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplementStatus string

const (
	StatusActive    SupplementStatus = "ACTIVE"
	StatusCompleted SupplementStatus = "COMPLETED"
	StatusCancelled SupplementStatus = "CANCELLED"
)

// Supplement はユーザーのサプリメント摂取計画を表します。
// StartDate / EndDate は暦日（YYYY-MM-DD）であり、タイムスタンプではありません。
// EndDate が nil の場合は無期限（継続中）で、在庫管理の対象になります。
type Supplement struct {
	SupplementID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                uuid.UUID        `gorm:"type:uuid;not null;index" json:"-"`
	Name                  string           `gorm:"not null" json:"name"`
	CapsulesPerTake       int              `gorm:"not null" json:"capsules_per_take"`
	Recommendation        *string          `json:"recommendation,omitempty"`
	SourceName            *string          `json:"source_name,omitempty"`
	SourceURL             *string          `json:"source_url,omitempty"`
	StartDate             string           `gorm:"not null" json:"start_date"` // YYYY-MM-DD
	EndDate               *string          `json:"end_date"`                   // YYYY-MM-DD, nil=無期限
	Status                SupplementStatus `gorm:"not null;default:ACTIVE;index" json:"status"`
	InventoryTotal        *int             `json:"inventory_total,omitempty"`
	LowInventoryThreshold *int             `json:"low_inventory_threshold,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	DeletedAt             gorm.DeletedAt   `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	Schedules []ScheduleEntry `gorm:"foreignKey:SupplementID;references:SupplementID" json:"schedules,omitempty"`
}

func (Supplement) TableName() string {
	return "supplements"
}

// End は終了日を EndBound 型として返します。
func (s *Supplement) End() EndBound {
	if s.EndDate == nil {
		return Indefinite()
	}
	return BoundedUntil(*s.EndDate)
}

// IsActiveOn は指定した暦日にこのサプリメントの摂取期間が有効かどうかを返します。
// 開始日・終了日の両端を含みます。ステータスは見ません（呼び出し側の責務）。
func (s *Supplement) IsActiveOn(date string) bool {
	if date < s.StartDate {
		return false
	}
	if end, ok := s.End().Date(); ok && date > end {
		return false
	}
	return true
}

// TracksInventory は在庫管理の対象（無期限サプリメント）かどうかを返します。
func (s *Supplement) TracksInventory() bool {
	return !s.End().Bounded()
}

// EndBound は「終了日あり／無期限」を明示的に表すタグ付きの値です。
// *string の nil 合体を各所に散らすと自動完了や在庫対象判定でズレが出るため、
// 判定は必ずこの型を経由します。
type EndBound struct {
	date    string
	bounded bool
}

func Indefinite() EndBound {
	return EndBound{}
}

func BoundedUntil(date string) EndBound {
	return EndBound{date: date, bounded: true}
}

func (b EndBound) Bounded() bool {
	return b.bounded
}

// Date は終了日と、終了日が設定されているかどうかを返します。
func (b EndBound) Date() (string, bool) {
	return b.date, b.bounded
}

// ClampUpper は集計の上限日を返します: min(終了日, today)。
// 暦日文字列（YYYY-MM-DD）は辞書順比較がそのまま日付比較になります。
func (b EndBound) ClampUpper(today string) string {
	if b.bounded && b.date < today {
		return b.date
	}
	return today
}

// ScheduleEntry はサプリメントの1日のうちの摂取タイミング（時刻）を表します。
// サプリメント作成時にまとめて作られ、並び順は作成順を維持します。
type ScheduleEntry struct {
	ScheduleID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SupplementID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	TimeOfDay    string    `gorm:"not null" json:"time_of_day"` // HH:MM
	CreatedAt    time.Time `json:"-"`
}

func (ScheduleEntry) TableName() string {
	return "supplement_schedules"
}

// サプリメント作成リクエストDTO
type PostSupplementRequest struct {
	Name                  string   `json:"name" validate:"required,min=1,max=200"`
	CapsulesPerTake       int      `json:"capsules_per_take" validate:"required,min=1"`
	TimesOfDay            []string `json:"times_of_day" validate:"required,min=1,dive,len=5"`
	StartDate             string   `json:"start_date" validate:"required"`
	EndDate               *string  `json:"end_date,omitempty"`
	Recommendation        *string  `json:"recommendation,omitempty" validate:"omitempty,max=2000"`
	SourceName            *string  `json:"source_name,omitempty" validate:"omitempty,max=200"`
	SourceURL             *string  `json:"source_url,omitempty" validate:"omitempty,url"`
	InventoryTotal        *int     `json:"inventory_total,omitempty" validate:"omitempty,min=0"`
	LowInventoryThreshold *int     `json:"low_inventory_threshold,omitempty" validate:"omitempty,min=0"`
}

// 在庫補充リクエストDTO
type RefillRequest struct {
	RefillAmount int `json:"refill_amount" validate:"required,min=1"`
}

// ステータス別にグルーピングした一覧レスポンス
type SupplementsListGroup struct {
	Status SupplementStatus       `json:"status"`
	Items  []*SupplementsListItem `json:"items"`
}

type SupplementsListItem struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	StartDate  string    `json:"start_date"`
	EndDate    *string   `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
	SourceName *string   `json:"source_name"`
	SourceURL  *string   `json:"source_url"`
}

type SupplementsListResponse struct {
	Supplements []*SupplementsListGroup `json:"supplements"`
}

// 補充レスポンス
type RefillResponse struct {
	Success       bool              `json:"success"`
	Supplement    RefillSupplement  `json:"supplement"`
	RefillDetails RefillDetails     `json:"refill_details"`
}

type RefillSupplement struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	InventoryTotal int       `json:"inventory_total"`
}

type RefillDetails struct {
	RefillAmount      int `json:"refill_amount"`
	PreviousInventory int `json:"previous_inventory"`
	NewInventory      int `json:"new_inventory"`
}

// 「今日の予定」レスポンス
type TodayResponse struct {
	Date        string             `json:"date"`
	Timezone    string             `json:"timezone"`
	Supplements []*TodaySupplement `json:"supplements"`
}

type TodaySupplement struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name"`
	CapsulesPerTake   int              `json:"capsules_per_take"`
	Recommendation    string           `json:"recommendation"`
	Schedules         []*TodaySchedule `json:"supplement_schedules"`
	AdherenceProgress float64          `json:"adherence_progress"`
}

type TodaySchedule struct {
	ID              uuid.UUID `json:"id"`
	TimeOfDay       string    `json:"time_of_day"`
	AdherenceStatus bool      `json:"adherence_status"`
}

// 詳細レスポンス
type SupplementDetailResponse struct {
	Supplement      *SupplementDetail  `json:"supplement"`
	DayBuckets      []*DayBucket       `json:"day_buckets"`
	RecentAdherence []*RecentAdherence `json:"recent_adherence"`
}

type SupplementDetail struct {
	ID                    uuid.UUID        `json:"id"`
	Name                  string           `json:"name"`
	CapsulesPerTake       int              `json:"capsules_per_take"`
	Recommendation        string           `json:"recommendation"`
	SourceName            string           `json:"source_name"`
	SourceURL             string           `json:"source_url"`
	StartDate             string           `json:"start_date"`
	EndDate               *string          `json:"end_date"`
	Status                SupplementStatus `json:"status"`
	CreatedAt             time.Time        `json:"created_at"`
	InventoryTotal        *int             `json:"inventory_total"`
	LowInventoryThreshold *int             `json:"low_inventory_threshold"`
	Schedules             []string         `json:"schedules"`
	TotalTakes            int              `json:"total_takes"`
	AdherenceProgress     float64          `json:"adherence_progress"`
}

type DayBucket struct {
	Date     string `json:"date"`
	IsTaken  bool   `json:"isTaken"`
	IsFuture bool   `json:"isFuture"`
}

type RecentAdherence struct {
	Date      string    `json:"date"`
	TimeOfDay string    `json:"time_of_day"`
	MarkedAt  time.Time `json:"marked_at"`
}

// 自動完了スイープのレスポンス
type AutoCompleteResponse struct {
	Success             bool                    `json:"success"`
	Message             string                  `json:"message"`
	UpdatedCount        int                     `json:"updated_count"`
	UpdatedSupplements  []*CompletedSupplement  `json:"updated_supplements"`
}

type CompletedSupplement struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	EndDate string    `json:"end_date"`
}

// 補充リマインダースイープのレスポンス
type RefillRemindersResponse struct {
	Success             bool `json:"success"`
	EligibleSupplements int  `json:"eligible_supplements"`
	NotifiedUsers       int  `json:"notified_users"`
}
