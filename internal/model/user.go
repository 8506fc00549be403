// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User はパスキー認証基盤が払い出したユーザーのプロフィール行です。
// 資格情報の発行・検証は認証基盤側の責務で、本アプリは JWT の subject を
// UserID として信頼するだけです。
type User struct {
	UserID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Email       string         `gorm:"unique;not null" json:"email"`
	DisplayName string         `json:"display_name"`
	Timezone    string         `gorm:"default:UTC" json:"timezone"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// 通知設定（notification_preferences 相当）
	SystemNotificationsEnabled bool `gorm:"default:true" json:"system_notifications_enabled"`
	RefillRemindersEnabled     bool `gorm:"default:true" json:"refill_reminders_enabled"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// ユーザー統計レスポンス
type UserStatsResponse struct {
	SupplementsCount int64 `json:"supplements_count"`
	DayStreak        int   `json:"day_streak"`
}
