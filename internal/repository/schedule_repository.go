//go:generate mockery --name ScheduleRepository --output ./mocks --outpkg mocks --case=underscore
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

// ScheduleRepository は摂取タイミング（スケジュール）の取得を担います。
type ScheduleRepository interface {
	CreateAll(ctx context.Context, tx *gorm.DB, entries []*model.ScheduleEntry) error
	FindBySupplement(ctx context.Context, db *gorm.DB, supplementID uuid.UUID) ([]*model.ScheduleEntry, error)
	FindByID(ctx context.Context, db *gorm.DB, supplementID, scheduleID uuid.UUID) (*model.ScheduleEntry, error)
}

type gormScheduleRepository struct{}

func NewGormScheduleRepository() ScheduleRepository {
	return &gormScheduleRepository{}
}

func (r *gormScheduleRepository) CreateAll(ctx context.Context, tx *gorm.DB, entries []*model.ScheduleEntry) error {
	logger := middleware.GetLogger(ctx)
	if len(entries) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(entries)
	if result.Error != nil {
		logger.Error("Error creating schedule entries in DB",
			"error", result.Error,
			"supplement_id", entries[0].SupplementID.String(),
			"count", len(entries),
		)
		return fmt.Errorf("gormScheduleRepository.CreateAll: %w", result.Error)
	}
	return nil
}

func (r *gormScheduleRepository) FindBySupplement(ctx context.Context, db *gorm.DB, supplementID uuid.UUID) ([]*model.ScheduleEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.ScheduleEntry
	// 並びは作成順。時刻順にはソートしない（作成時の意図を保存する）
	result := db.WithContext(ctx).
		Where("supplement_id = ?", supplementID).
		Order("created_at ASC, schedule_id ASC").
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding schedule entries in DB",
			"error", result.Error,
			"supplement_id", supplementID.String(),
		)
		return nil, fmt.Errorf("gormScheduleRepository.FindBySupplement: %w", result.Error)
	}
	return entries, nil
}

func (r *gormScheduleRepository) FindByID(ctx context.Context, db *gorm.DB, supplementID, scheduleID uuid.UUID) (*model.ScheduleEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.ScheduleEntry
	result := db.WithContext(ctx).
		Where("supplement_id = ? AND schedule_id = ?", supplementID, scheduleID).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding schedule entry by ID in DB",
			"error", result.Error,
			"supplement_id", supplementID.String(),
			"schedule_id", scheduleID.String(),
		)
		return nil, fmt.Errorf("gormScheduleRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}
