//go:generate mockery --name LifecycleService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"fmt"

	"supplement_keep/internal/middleware"
	"supplement_keep/internal/model"
	"supplement_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LifecycleService は終了日を過ぎたサプリメントの自動完了を担います。
type LifecycleService interface {
	AutoComplete(ctx context.Context, today string) (*model.AutoCompleteResponse, error)
}

type lifecycleService struct {
	db             *gorm.DB
	supplementRepo repository.SupplementRepository
}

func NewLifecycleService(db *gorm.DB, supplementRepo repository.SupplementRepository) LifecycleService {
	return &lifecycleService{db: db, supplementRepo: supplementRepo}
}

// AutoComplete は end_date < today の ACTIVE なサプリメントを COMPLETED に更新します。
// 終了日当日はまだ摂取期間内なので対象外です。ACTIVE のみ更新するため何度実行しても
// 結果は同じです（冪等）。
func (s *lifecycleService) AutoComplete(ctx context.Context, today string) (*model.AutoCompleteResponse, error) {
	logger := middleware.GetLogger(ctx)

	expired, err := s.supplementRepo.FindExpiredActive(ctx, s.db, today)
	if err != nil {
		return nil, fmt.Errorf("lifecycleService.AutoComplete: %w", err)
	}
	if len(expired) == 0 {
		return &model.AutoCompleteResponse{
			Success:            true,
			Message:            "完了対象のサプリメントはありません。",
			UpdatedCount:       0,
			UpdatedSupplements: []*model.CompletedSupplement{},
		}, nil
	}

	ids := make([]uuid.UUID, 0, len(expired))
	for _, sup := range expired {
		ids = append(ids, sup.SupplementID)
	}

	var updated int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		updated, txErr = s.supplementRepo.MarkCompleted(ctx, tx, ids)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("lifecycleService.AutoComplete: %w", err)
	}

	completed := make([]*model.CompletedSupplement, 0, len(expired))
	for _, sup := range expired {
		endDate := ""
		if sup.EndDate != nil {
			endDate = *sup.EndDate
		}
		completed = append(completed, &model.CompletedSupplement{
			ID:      sup.SupplementID,
			Name:    sup.Name,
			EndDate: endDate,
		})
	}

	logger.Info("Auto-complete sweep finished", "today", today, "updated_count", updated)
	return &model.AutoCompleteResponse{
		Success:            true,
		Message:            fmt.Sprintf("%d 件のサプリメントを完了にしました。", updated),
		UpdatedCount:       int(updated),
		UpdatedSupplements: completed,
	}, nil
}
