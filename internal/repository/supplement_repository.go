//go:generate mockery --name SupplementRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplementRepository はサプリメント本体の取得・更新を担います。
// 所有者（userID）を条件に含む検索は、所有権チェックを兼ねています。
type SupplementRepository interface {
	Create(ctx context.Context, tx *gorm.DB, supplement *model.Supplement) error
	FindByID(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID) (*model.Supplement, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Supplement, error)
	FindActiveOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date string) ([]*model.Supplement, error)
	FindExpiredActive(ctx context.Context, db *gorm.DB, today string) ([]*model.Supplement, error)
	FindIndefiniteActiveWithInventory(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) ([]*model.Supplement, error)
	MarkCompleted(ctx context.Context, tx *gorm.DB, supplementIDs []uuid.UUID) (int64, error)
	UpdateInventory(ctx context.Context, tx *gorm.DB, supplementID uuid.UUID, total int) error
	Delete(ctx context.Context, tx *gorm.DB, userID, supplementID uuid.UUID) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormSupplementRepository struct{}

func NewGormSupplementRepository() SupplementRepository {
	return &gormSupplementRepository{}
}

func (r *gormSupplementRepository) Create(ctx context.Context, tx *gorm.DB, supplement *model.Supplement) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(supplement)
	if result.Error != nil {
		logger.Error("Error creating supplement in DB",
			"error", result.Error,
			"user_id", supplement.UserID.String(),
			"name", supplement.Name,
		)
		return fmt.Errorf("gormSupplementRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSupplementRepository) FindByID(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID) (*model.Supplement, error) {
	logger := middleware.GetLogger(ctx)
	var supplement model.Supplement
	result := db.WithContext(ctx).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		First(&supplement)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// 他人のサプリメントも「存在しない」と同じ扱いにする（存在を漏らさない）
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding supplement by ID in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"supplement_id", supplementID.String(),
		)
		return nil, fmt.Errorf("gormSupplementRepository.FindByID: %w", result.Error)
	}
	return &supplement, nil
}

func (r *gormSupplementRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Supplement, error) {
	logger := middleware.GetLogger(ctx)
	var supplements []*model.Supplement
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&supplements)
	if result.Error != nil {
		logger.Error("Error finding supplements by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormSupplementRepository.FindByUser: %w", result.Error)
	}
	return supplements, nil
}

// FindActiveOn は指定した暦日に摂取期間が有効なACTIVEサプリメントを
// スケジュール込みで返します。
func (r *gormSupplementRepository) FindActiveOn(ctx context.Context, db *gorm.DB, userID uuid.UUID, date string) ([]*model.Supplement, error) {
	logger := middleware.GetLogger(ctx)
	var supplements []*model.Supplement
	result := db.WithContext(ctx).
		Preload("Schedules", func(db *gorm.DB) *gorm.DB {
			// スケジュールは作成順（作成時の並び）を維持する
			return db.Order("created_at ASC, schedule_id ASC")
		}).
		Where("user_id = ? AND status = ?", userID, model.StatusActive).
		Where("start_date <= ?", date).
		Where("end_date IS NULL OR end_date >= ?", date).
		Order("created_at ASC").
		Find(&supplements)
	if result.Error != nil {
		logger.Error("Error finding active supplements in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"date", date,
		)
		return nil, fmt.Errorf("gormSupplementRepository.FindActiveOn: %w", result.Error)
	}
	return supplements, nil
}

// FindExpiredActive は終了日が today より前のACTIVEサプリメントを全ユーザー分返します。
// 自動完了スイープ用のグローバル検索です。
func (r *gormSupplementRepository) FindExpiredActive(ctx context.Context, db *gorm.DB, today string) ([]*model.Supplement, error) {
	logger := middleware.GetLogger(ctx)
	var supplements []*model.Supplement
	result := db.WithContext(ctx).
		Where("status = ?", model.StatusActive).
		Where("end_date IS NOT NULL AND end_date < ?", today).
		Find(&supplements)
	if result.Error != nil {
		logger.Error("Error finding expired active supplements in DB",
			"error", result.Error,
			"today", today,
		)
		return nil, fmt.Errorf("gormSupplementRepository.FindExpiredActive: %w", result.Error)
	}
	return supplements, nil
}

// FindIndefiniteActiveWithInventory は在庫管理対象（無期限）のACTIVEサプリメントのうち、
// 在庫数としきい値の両方が設定されているものを返します。どちらかが未設定のものは
// 補充リマインダーの対象外です（nilを0として扱わない）。
func (r *gormSupplementRepository) FindIndefiniteActiveWithInventory(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) ([]*model.Supplement, error) {
	logger := middleware.GetLogger(ctx)
	var supplements []*model.Supplement
	query := db.WithContext(ctx).
		Where("status = ?", model.StatusActive).
		Where("end_date IS NULL").
		Where("inventory_total IS NOT NULL AND low_inventory_threshold IS NOT NULL")
	if len(userIDs) > 0 {
		query = query.Where("user_id IN ?", userIDs)
	}
	result := query.Order("created_at ASC").Find(&supplements)
	if result.Error != nil {
		logger.Error("Error finding indefinite active supplements in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSupplementRepository.FindIndefiniteActiveWithInventory: %w", result.Error)
	}
	return supplements, nil
}

func (r *gormSupplementRepository) MarkCompleted(ctx context.Context, tx *gorm.DB, supplementIDs []uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	if len(supplementIDs) == 0 {
		return 0, nil
	}
	result := tx.WithContext(ctx).
		Model(&model.Supplement{}).
		Where("supplement_id IN ? AND status = ?", supplementIDs, model.StatusActive).
		Update("status", model.StatusCompleted)
	if result.Error != nil {
		logger.Error("Error marking supplements completed in DB",
			"error", result.Error,
			"count", len(supplementIDs),
		)
		return 0, fmt.Errorf("gormSupplementRepository.MarkCompleted: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *gormSupplementRepository) UpdateInventory(ctx context.Context, tx *gorm.DB, supplementID uuid.UUID, total int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.Supplement{}).
		Where("supplement_id = ?", supplementID).
		Update("inventory_total", total)
	if result.Error != nil {
		logger.Error("Error updating supplement inventory in DB",
			"error", result.Error,
			"supplement_id", supplementID.String(),
		)
		return fmt.Errorf("gormSupplementRepository.UpdateInventory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSupplementRepository) Delete(ctx context.Context, tx *gorm.DB, userID, supplementID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	// GORMのDeleteは論理削除（deleted_atを設定）になる
	result := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Supplement{}, supplementID)
	if result.Error != nil {
		logger.Error("Error deleting supplement in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"supplement_id", supplementID.String(),
		)
		return fmt.Errorf("gormSupplementRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSupplementRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.Supplement{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting supplements in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormSupplementRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}
