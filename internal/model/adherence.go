// internal/model/adherence.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AdherenceRecord は「この暦日にこのスケジュールの分を摂取した」ことを表すレコードです。
// レコードの存在＝摂取済み、不在＝未摂取。トグルOFFで物理削除されます（論理削除なし）。
// TakenAt はユーザーのタイムゾーンで解決済みの暦日文字列（YYYY-MM-DD）であり、
// タイムスタンプではない点に注意してください。
type AdherenceRecord struct {
	AdherenceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_adherence_key,unique"`
	SupplementID  uuid.UUID `gorm:"type:uuid;not null;index:idx_adherence_key,unique"`
	ScheduleID    uuid.UUID `gorm:"type:uuid;not null;index:idx_adherence_key,unique"`
	TakenAt       string    `gorm:"not null;index:idx_adherence_key,unique"` // YYYY-MM-DD
	CapsulesTaken int       `gorm:"not null"`                                // トグル時点の capsules_per_take を複製
	MarkedAt      time.Time `gorm:"not null"`
}

func (AdherenceRecord) TableName() string {
	return "supplement_adherence"
}

// トグルリクエストDTO
type ToggleAdherenceRequest struct {
	SupplementID string `json:"supplement_id" validate:"required,uuid"`
	ScheduleID   string `json:"schedule_id" validate:"required,uuid"`
	TakenAt      string `json:"taken_at" validate:"required"`
}

// トグルレスポンス
type ToggleAdherenceResponse struct {
	Success     bool       `json:"success"`
	IsTaken     bool       `json:"is_taken"`
	AdherenceID *uuid.UUID `json:"adherence_id"`
}
