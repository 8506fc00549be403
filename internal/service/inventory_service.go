//go:generate mockery --name InventoryService --output ./mocks --outpkg mocks --case=underscore
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

// InventoryService は在庫の補充と残量低下の検出を担います。
// 在庫管理の対象は無期限（終了日なし）のサプリメントのみです。
type InventoryService interface {
	Refill(ctx context.Context, userID, supplementID uuid.UUID, amount int) (*model.RefillResponse, error)
	RunRefillReminders(ctx context.Context) (*model.RefillRemindersResponse, error)
}

type inventoryService struct {
	db             *gorm.DB
	supplementRepo repository.SupplementRepository
	userRepo       repository.UserRepository
	notifier       Notifier
}

func NewInventoryService(
	db *gorm.DB,
	supplementRepo repository.SupplementRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) InventoryService {
	return &inventoryService{
		db:             db,
		supplementRepo: supplementRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

// Refill は在庫を amount だけ加算します。
// 加算は無条件・非冪等です（同じリクエストを2回送れば2回分増える）。
// クライアント側の再送制御に委ねる設計です。
func (s *inventoryService) Refill(ctx context.Context, userID, supplementID uuid.UUID, amount int) (*model.RefillResponse, error) {
	logger := middleware.GetLogger(ctx)

	if amount <= 0 {
		return nil, model.NewAppError("INVALID_INPUT", "補充量は1以上を指定してください。", "refill_amount", model.ErrInvalidInput)
	}

	var resp *model.RefillResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		supplement, err := s.supplementRepo.FindByID(ctx, tx, userID, supplementID)
		if err != nil {
			return err
		}
		if !supplement.TracksInventory() {
			return model.NewAppError("INVALID_INPUT", "終了日のあるサプリメントは在庫補充できません。", "", model.ErrInvalidInput)
		}

		previous := 0
		if supplement.InventoryTotal != nil {
			previous = *supplement.InventoryTotal
		}
		next := previous + amount
		if err := s.supplementRepo.UpdateInventory(ctx, tx, supplementID, next); err != nil {
			return err
		}

		resp = &model.RefillResponse{
			Success: true,
			Supplement: model.RefillSupplement{
				ID:             supplement.SupplementID,
				Name:           supplement.Name,
				InventoryTotal: next,
			},
			RefillDetails: model.RefillDetails{
				RefillAmount:      amount,
				PreviousInventory: previous,
				NewInventory:      next,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Inventory refilled",
		"supplement_id", supplementID.String(),
		"refill_amount", amount,
		"new_inventory", resp.Supplement.InventoryTotal,
	)
	return resp, nil
}

// LowInventoryCandidates は残量低下しているサプリメントだけを返します。
// 在庫数・しきい値のどちらかが未設定（nil）のものは対象外です。
// nil を 0 とみなすと未設定のサプリメント全件に通知が飛ぶため、除外が正です。
func LowInventoryCandidates(supplements []*model.Supplement) []*model.Supplement {
	eligible := make([]*model.Supplement, 0, len(supplements))
	for _, s := range supplements {
		if s.InventoryTotal == nil || s.LowInventoryThreshold == nil {
			continue
		}
		if *s.InventoryTotal <= *s.LowInventoryThreshold {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// RunRefillReminders は残量低下中のサプリメントを持つユーザーに通知を送ります。
// ユーザーごとに1通にまとめます（サプリメントごとに送ると通知過多になる）。
func (s *inventoryService) RunRefillReminders(ctx context.Context) (*model.RefillRemindersResponse, error) {
	logger := middleware.GetLogger(ctx)

	candidates, err := s.supplementRepo.FindIndefiniteActiveWithInventory(ctx, s.db, nil)
	if err != nil {
		return nil, fmt.Errorf("inventoryService.RunRefillReminders: %w", err)
	}
	eligible := LowInventoryCandidates(candidates)
	if len(eligible) == 0 {
		return &model.RefillRemindersResponse{Success: true}, nil
	}

	byOwner := make(map[uuid.UUID][]*model.Supplement)
	ownerIDs := make([]uuid.UUID, 0)
	for _, sup := range eligible {
		if _, ok := byOwner[sup.UserID]; !ok {
			ownerIDs = append(ownerIDs, sup.UserID)
		}
		byOwner[sup.UserID] = append(byOwner[sup.UserID], sup)
	}

	users, err := s.userRepo.FindByIDs(ctx, s.db, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("inventoryService.RunRefillReminders: %w", err)
	}

	notified := 0
	for _, user := range users {
		if !user.SystemNotificationsEnabled || !user.RefillRemindersEnabled {
			continue
		}
		supplements := byOwner[user.UserID]
		first := supplements[0]
		payload := NotificationPayload{
			Title: "サプリメントの補充時期です",
			Body:  buildReminderBody(supplements),
			Tag:   "refill-reminder",
			Data: map[string]string{
				"supplement_id": first.SupplementID.String(),
			},
		}
		sent, err := s.notifier.Send(ctx, user, payload)
		if err != nil {
			// 1人への送信失敗でスイープ全体は止めない
			logger.Error("Failed to send refill reminder", "error", err, "user_id", user.UserID.String())
			continue
		}
		if sent > 0 {
			notified++
		}
	}

	logger.Info("Refill reminder sweep finished",
		"eligible_supplements", len(eligible),
		"notified_users", notified,
	)
	return &model.RefillRemindersResponse{
		Success:             true,
		EligibleSupplements: len(eligible),
		NotifiedUsers:       notified,
	}, nil
}

func buildReminderBody(supplements []*model.Supplement) string {
	first := supplements[0]
	body := fmt.Sprintf("「%s」の残量が %d 個（しきい値 %d 個）になりました。",
		first.Name, *first.InventoryTotal, *first.LowInventoryThreshold)
	if len(supplements) > 1 {
		body += fmt.Sprintf(" 他 %d 件のサプリメントも補充時期です。", len(supplements)-1)
	}
	return body
}
