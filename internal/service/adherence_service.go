//go:generate mockery --name AdherenceService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/repository"
	"supplement_keep/internal/timezone"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdherenceService は摂取記録のトグル（ON/OFF）を担います。
type AdherenceService interface {
	Toggle(ctx context.Context, userID, supplementID, scheduleID uuid.UUID, takenAt string) (*model.ToggleAdherenceResponse, error)
}

type adherenceService struct {
	db            *gorm.DB
	supplementRepo repository.SupplementRepository
	scheduleRepo   repository.ScheduleRepository
	adherenceRepo  repository.AdherenceRepository
}

func NewAdherenceService(
	db *gorm.DB,
	supplementRepo repository.SupplementRepository,
	scheduleRepo repository.ScheduleRepository,
	adherenceRepo repository.AdherenceRepository,
) AdherenceService {
	return &adherenceService{
		db:            db,
		supplementRepo: supplementRepo,
		scheduleRepo:   scheduleRepo,
		adherenceRepo:  adherenceRepo,
	}
}

// Toggle は指定した (サプリメント, スケジュール, 暦日) の摂取記録を反転します。
// 記録があれば削除（未摂取に戻す）、なければ作成（摂取済みにする）。
// 所有権の検証に失敗した場合は ErrNotFound を返します（存在を漏らさない）。
//
// 同時トグルで一意制約違反（ErrConflict）が起きた場合は良性の競合とみなし、
// 現在の状態を読み直してそのまま返します。クライアントにはエラーを見せません。
func (s *adherenceService) Toggle(ctx context.Context, userID, supplementID, scheduleID uuid.UUID, takenAt string) (*model.ToggleAdherenceResponse, error) {
	logger := middleware.GetLogger(ctx)

	if !timezone.IsValidCivilDate(takenAt) {
		return nil, model.NewAppError("INVALID_INPUT", "日付の形式が正しくありません。", "taken_at", model.ErrInvalidInput)
	}

	var resp *model.ToggleAdherenceResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 所有権チェーン: サプリメント（所有者条件付き） → スケジュール（サプリメント条件付き）
		supplement, err := s.supplementRepo.FindByID(ctx, tx, userID, supplementID)
		if err != nil {
			return err
		}
		schedule, err := s.scheduleRepo.FindByID(ctx, tx, supplementID, scheduleID)
		if err != nil {
			return err
		}

		existing, err := s.adherenceRepo.Find(ctx, tx, userID, supplementID, scheduleID, takenAt)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return err
		}

		if existing != nil {
			// OFF: 物理削除して在庫を戻す
			if err := s.adherenceRepo.Delete(ctx, tx, existing.AdherenceID); err != nil {
				return err
			}
			if err := s.restoreInventory(ctx, tx, supplement, existing.CapsulesTaken); err != nil {
				return err
			}
			resp = &model.ToggleAdherenceResponse{Success: true, IsTaken: false, AdherenceID: nil}
			return nil
		}

		// ON: 記録を作成して在庫を減らす
		record := &model.AdherenceRecord{
			AdherenceID:   uuid.New(),
			UserID:        userID,
			SupplementID:  supplementID,
			ScheduleID:    schedule.ScheduleID,
			TakenAt:       takenAt,
			CapsulesTaken: supplement.CapsulesPerTake,
			MarkedAt:      time.Now().UTC(),
		}
		if err := s.adherenceRepo.Create(ctx, tx, record); err != nil {
			return err
		}
		if err := s.depleteInventory(ctx, tx, supplement, record.CapsulesTaken); err != nil {
			return err
		}
		resp = &model.ToggleAdherenceResponse{Success: true, IsTaken: true, AdherenceID: &record.AdherenceID}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// 同時トグルに負けた側。勝った側が作った現在状態を返す
			logger.Info("Concurrent adherence toggle detected, returning current state",
				"supplement_id", supplementID.String(),
				"schedule_id", scheduleID.String(),
				"taken_at", takenAt,
			)
			return s.currentState(ctx, userID, supplementID, scheduleID, takenAt)
		}
		return nil, err
	}
	return resp, nil
}

func (s *adherenceService) currentState(ctx context.Context, userID, supplementID, scheduleID uuid.UUID, takenAt string) (*model.ToggleAdherenceResponse, error) {
	record, err := s.adherenceRepo.Find(ctx, s.db, userID, supplementID, scheduleID, takenAt)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return &model.ToggleAdherenceResponse{Success: true, IsTaken: false, AdherenceID: nil}, nil
		}
		return nil, fmt.Errorf("adherenceService.currentState: %w", err)
	}
	return &model.ToggleAdherenceResponse{Success: true, IsTaken: true, AdherenceID: &record.AdherenceID}, nil
}

// depleteInventory は摂取分だけ在庫を減らします（下限 0）。
// 在庫管理対象外（期限付き、または在庫未設定）の場合は何もしません。
func (s *adherenceService) depleteInventory(ctx context.Context, tx *gorm.DB, supplement *model.Supplement, capsules int) error {
	if !supplement.TracksInventory() || supplement.InventoryTotal == nil {
		return nil
	}
	next := *supplement.InventoryTotal - capsules
	if next < 0 {
		next = 0
	}
	return s.supplementRepo.UpdateInventory(ctx, tx, supplement.SupplementID, next)
}

// restoreInventory はトグルOFFで摂取分の在庫を戻します。
func (s *adherenceService) restoreInventory(ctx context.Context, tx *gorm.DB, supplement *model.Supplement, capsules int) error {
	if !supplement.TracksInventory() || supplement.InventoryTotal == nil {
		return nil
	}
	next := *supplement.InventoryTotal + capsules
	return s.supplementRepo.UpdateInventory(ctx, tx, supplement.SupplementID, next)
}
