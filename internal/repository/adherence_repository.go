//go:generate mockery --name AdherenceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AdherenceRepository は摂取記録（AdherenceRecord）の追加・削除・集計を担います。
// (supplement_id, schedule_id, taken_at, user_id) の複合ユニーク制約が
// 同時トグルの重複登録を防ぐ最後の砦です。
type AdherenceRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.AdherenceRecord) error
	Find(ctx context.Context, db *gorm.DB, userID, supplementID, scheduleID uuid.UUID, takenAt string) (*model.AdherenceRecord, error)
	Delete(ctx context.Context, tx *gorm.DB, adherenceID uuid.UUID) error
	FindForDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, takenAt string, supplementIDs []uuid.UUID) ([]*model.AdherenceRecord, error)
	CountTakenDates(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID) (int64, error)
	FindTakenDates(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID) ([]string, error)
	FindDistinctDatesByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error)
	FindRecent(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID, limit int) ([]*model.AdherenceRecord, error)
}

type gormAdherenceRepository struct{}

func NewGormAdherenceRepository() AdherenceRepository {
	return &gormAdherenceRepository{}
}

func (r *gormAdherenceRepository) Create(ctx context.Context, tx *gorm.DB, record *model.AdherenceRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		// 同一キーへの同時トグル。呼び出し側が現在状態を読み直して回復する
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key on adherence insert (concurrent toggle)",
				"supplement_id", record.SupplementID.String(),
				"schedule_id", record.ScheduleID.String(),
				"taken_at", record.TakenAt,
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating adherence record in DB",
			"error", result.Error,
			"supplement_id", record.SupplementID.String(),
			"schedule_id", record.ScheduleID.String(),
		)
		return fmt.Errorf("gormAdherenceRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAdherenceRepository) Find(ctx context.Context, db *gorm.DB, userID, supplementID, scheduleID uuid.UUID, takenAt string) (*model.AdherenceRecord, error) {
	logger := middleware.GetLogger(ctx)
	var record model.AdherenceRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND supplement_id = ? AND schedule_id = ? AND taken_at = ?",
			userID, supplementID, scheduleID, takenAt).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding adherence record in DB",
			"error", result.Error,
			"supplement_id", supplementID.String(),
			"schedule_id", scheduleID.String(),
			"taken_at", takenAt,
		)
		return nil, fmt.Errorf("gormAdherenceRepository.Find: %w", result.Error)
	}
	return &record, nil
}

func (r *gormAdherenceRepository) Delete(ctx context.Context, tx *gorm.DB, adherenceID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	// トグルOFFは物理削除
	result := tx.WithContext(ctx).Delete(&model.AdherenceRecord{}, adherenceID)
	if result.Error != nil {
		logger.Error("Error deleting adherence record in DB",
			"error", result.Error,
			"adherence_id", adherenceID.String(),
		)
		return fmt.Errorf("gormAdherenceRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormAdherenceRepository) FindForDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, takenAt string, supplementIDs []uuid.UUID) ([]*model.AdherenceRecord, error) {
	logger := middleware.GetLogger(ctx)
	if len(supplementIDs) == 0 {
		return nil, nil
	}
	var records []*model.AdherenceRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND taken_at = ? AND supplement_id IN ?", userID, takenAt, supplementIDs).
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding adherence records for date in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"taken_at", takenAt,
		)
		return nil, fmt.Errorf("gormAdherenceRepository.FindForDate: %w", result.Error)
	}
	return records, nil
}

// CountTakenDates は全スケジュール横断で摂取記録のある暦日数（重複なし）を返します。
func (r *gormAdherenceRepository) CountTakenDates(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).
		Model(&model.AdherenceRecord{}).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		Distinct("taken_at").
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting taken dates in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"supplement_id", supplementID.String(),
		)
		return 0, fmt.Errorf("gormAdherenceRepository.CountTakenDates: %w", result.Error)
	}
	return count, nil
}

func (r *gormAdherenceRepository) FindTakenDates(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var dates []string
	result := db.WithContext(ctx).
		Model(&model.AdherenceRecord{}).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		Distinct().
		Order("taken_at ASC").
		Pluck("taken_at", &dates)
	if result.Error != nil {
		logger.Error("Error finding taken dates in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"supplement_id", supplementID.String(),
		)
		return nil, fmt.Errorf("gormAdherenceRepository.FindTakenDates: %w", result.Error)
	}
	return dates, nil
}

func (r *gormAdherenceRepository) FindDistinctDatesByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var dates []string
	result := db.WithContext(ctx).
		Model(&model.AdherenceRecord{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("taken_at ASC").
		Pluck("taken_at", &dates)
	if result.Error != nil {
		logger.Error("Error finding distinct adherence dates in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormAdherenceRepository.FindDistinctDatesByUser: %w", result.Error)
	}
	return dates, nil
}

func (r *gormAdherenceRepository) FindRecent(ctx context.Context, db *gorm.DB, userID, supplementID uuid.UUID, limit int) ([]*model.AdherenceRecord, error) {
	logger := middleware.GetLogger(ctx)
	var records []*model.AdherenceRecord
	result := db.WithContext(ctx).
		Where("user_id = ? AND supplement_id = ?", userID, supplementID).
		Order("taken_at DESC, marked_at DESC").
		Limit(limit).
		Find(&records)
	if result.Error != nil {
		logger.Error("Error finding recent adherence records in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"supplement_id", supplementID.String(),
		)
		return nil, fmt.Errorf("gormAdherenceRepository.FindRecent: %w", result.Error)
	}
	return records, nil
}
