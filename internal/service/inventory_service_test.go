// internal/service/inventory_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"supplement_keep/internal/model"
	"supplement_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// テスト用の記録する Notifier
type recordingNotifier struct {
	sent    []NotificationPayload
	sentTo  []uuid.UUID
	failFor map[uuid.UUID]bool
}

func (n *recordingNotifier) Send(ctx context.Context, user *model.User, payload NotificationPayload) (int, error) {
	if n.failFor[user.UserID] {
		return 0, errors.New("send failed")
	}
	n.sent = append(n.sent, payload)
	n.sentTo = append(n.sentTo, user.UserID)
	return 1, nil
}

func Test_inventoryService_Refill(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	supplementID := uuid.New()

	t.Run("正常系: 補充は加算される（5 + 10 + 10 = 25）", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)
		mockUserRepo := new(mocks.UserRepository)

		supplement := &model.Supplement{
			SupplementID:    supplementID,
			UserID:          userID,
			Name:            "亜鉛",
			CapsulesPerTake: 1,
			StartDate:       "2024-01-01",
			Status:          model.StatusActive,
			InventoryTotal:  intPtr(5),
		}
		mockSupRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, supplementID).
			Return(supplement, nil).Twice()
		mockSupRepo.On("UpdateInventory", ctx, mock.AnythingOfType("*gorm.DB"), supplementID, mock.AnythingOfType("int")).
			Run(func(args mock.Arguments) {
				// 更新を反映して次の読み取りに見せる
				next := args.Get(3).(int)
				supplement.InventoryTotal = intPtr(next)
			}).Return(nil).Twice()

		s := NewInventoryService(db, mockSupRepo, mockUserRepo, &recordingNotifier{})

		first, err := s.Refill(ctx, userID, supplementID, 10)
		require.NoError(t, err)
		assert.Equal(t, 5, first.RefillDetails.PreviousInventory)
		assert.Equal(t, 15, first.RefillDetails.NewInventory)
		assert.Equal(t, 15, first.Supplement.InventoryTotal)

		second, err := s.Refill(ctx, userID, supplementID, 10)
		require.NoError(t, err)
		assert.Equal(t, 15, second.RefillDetails.PreviousInventory)
		assert.Equal(t, 25, second.RefillDetails.NewInventory)

		mockSupRepo.AssertExpectations(t)
	})

	t.Run("正常系: 在庫未設定（nil）は0からの加算", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)
		mockUserRepo := new(mocks.UserRepository)

		supplement := &model.Supplement{
			SupplementID:    supplementID,
			UserID:          userID,
			Name:            "鉄",
			CapsulesPerTake: 1,
			StartDate:       "2024-01-01",
			Status:          model.StatusActive,
			InventoryTotal:  nil,
		}
		mockSupRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, supplementID).
			Return(supplement, nil).Once()
		mockSupRepo.On("UpdateInventory", ctx, mock.AnythingOfType("*gorm.DB"), supplementID, 20).
			Return(nil).Once()

		s := NewInventoryService(db, mockSupRepo, mockUserRepo, &recordingNotifier{})
		resp, err := s.Refill(ctx, userID, supplementID, 20)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.RefillDetails.PreviousInventory)
		assert.Equal(t, 20, resp.RefillDetails.NewInventory)

		mockSupRepo.AssertExpectations(t)
	})

	t.Run("異常系: 補充量0以下はInvalidInput", func(t *testing.T) {
		db := setupTestDB()
		s := NewInventoryService(db, new(mocks.SupplementRepository), new(mocks.UserRepository), &recordingNotifier{})

		_, err := s.Refill(ctx, userID, supplementID, 0)
		assert.ErrorIs(t, err, model.ErrInvalidInput)

		_, err = s.Refill(ctx, userID, supplementID, -3)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 期限付きサプリメントは補充できない", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)

		bounded := &model.Supplement{
			SupplementID:    supplementID,
			UserID:          userID,
			Name:            "ビタミンC",
			CapsulesPerTake: 1,
			StartDate:       "2024-01-01",
			EndDate:         strPtr("2024-06-30"),
			Status:          model.StatusActive,
		}
		mockSupRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, supplementID).
			Return(bounded, nil).Once()

		s := NewInventoryService(db, mockSupRepo, new(mocks.UserRepository), &recordingNotifier{})
		_, err := s.Refill(ctx, userID, supplementID, 10)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockSupRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他人のサプリメントはNotFound", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)
		mockSupRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, supplementID).
			Return(nil, model.ErrNotFound).Once()

		s := NewInventoryService(db, mockSupRepo, new(mocks.UserRepository), &recordingNotifier{})
		_, err := s.Refill(ctx, userID, supplementID, 10)
		assert.ErrorIs(t, err, model.ErrNotFound)
		mockSupRepo.AssertExpectations(t)
	})
}

func TestLowInventoryCandidates(t *testing.T) {
	newSup := func(total, threshold *int) *model.Supplement {
		return &model.Supplement{
			SupplementID:          uuid.New(),
			InventoryTotal:        total,
			LowInventoryThreshold: threshold,
		}
	}

	tests := []struct {
		name        string
		supplements []*model.Supplement
		wantCount   int
	}{
		{
			name:        "正常系: しきい値以下は対象（3 ≤ 5）",
			supplements: []*model.Supplement{newSup(intPtr(3), intPtr(5))},
			wantCount:   1,
		},
		{
			name:        "正常系: しきい値ちょうども対象",
			supplements: []*model.Supplement{newSup(intPtr(5), intPtr(5))},
			wantCount:   1,
		},
		{
			name:        "正常系: しきい値超は対象外",
			supplements: []*model.Supplement{newSup(intPtr(10), intPtr(5))},
			wantCount:   0,
		},
		{
			name:        "正常系: 在庫nilは対象外（0扱いしない）",
			supplements: []*model.Supplement{newSup(nil, intPtr(5))},
			wantCount:   0,
		},
		{
			name:        "正常系: しきい値nilは対象外",
			supplements: []*model.Supplement{newSup(intPtr(0), nil)},
			wantCount:   0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, LowInventoryCandidates(tt.supplements), tt.wantCount)
		})
	}
}

func Test_inventoryService_RunRefillReminders(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: ユーザーごとに1通、通知設定OFFは除外", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)
		mockUserRepo := new(mocks.UserRepository)
		notifier := &recordingNotifier{}

		userA := uuid.New() // 2件該当、通知ON
		userB := uuid.New() // 1件該当、リマインダーOFF

		supplements := []*model.Supplement{
			{SupplementID: uuid.New(), UserID: userA, Name: "ビタミンD", InventoryTotal: intPtr(2), LowInventoryThreshold: intPtr(5)},
			{SupplementID: uuid.New(), UserID: userA, Name: "亜鉛", InventoryTotal: intPtr(4), LowInventoryThreshold: intPtr(5)},
			{SupplementID: uuid.New(), UserID: userB, Name: "鉄", InventoryTotal: intPtr(1), LowInventoryThreshold: intPtr(5)},
			// 残量充分なので対象外
			{SupplementID: uuid.New(), UserID: userA, Name: "マグネシウム", InventoryTotal: intPtr(100), LowInventoryThreshold: intPtr(5)},
		}
		mockSupRepo.On("FindIndefiniteActiveWithInventory", ctx, mock.AnythingOfType("*gorm.DB"), []uuid.UUID(nil)).
			Return(supplements, nil).Once()
		mockUserRepo.On("FindByIDs", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.User{
				{UserID: userA, Email: "a@example.com", SystemNotificationsEnabled: true, RefillRemindersEnabled: true},
				{UserID: userB, Email: "b@example.com", SystemNotificationsEnabled: true, RefillRemindersEnabled: false},
			}, nil).Once()

		s := NewInventoryService(db, mockSupRepo, mockUserRepo, notifier)
		resp, err := s.RunRefillReminders(ctx)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 3, resp.EligibleSupplements)
		assert.Equal(t, 1, resp.NotifiedUsers)

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, userA, notifier.sentTo[0])
		assert.Equal(t, "refill-reminder", notifier.sent[0].Tag)

		mockSupRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("正常系: 該当なしなら通知も送らない", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)
		mockUserRepo := new(mocks.UserRepository)
		notifier := &recordingNotifier{}

		mockSupRepo.On("FindIndefiniteActiveWithInventory", ctx, mock.AnythingOfType("*gorm.DB"), []uuid.UUID(nil)).
			Return(nil, nil).Once()

		s := NewInventoryService(db, mockSupRepo, mockUserRepo, notifier)
		resp, err := s.RunRefillReminders(ctx)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Zero(t, resp.NotifiedUsers)
		assert.Empty(t, notifier.sent)

		mockSupRepo.AssertExpectations(t)
	})

	t.Run("正常系: 1人への送信失敗でスイープは止まらない", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)
		mockUserRepo := new(mocks.UserRepository)

		userA := uuid.New()
		userB := uuid.New()
		notifier := &recordingNotifier{failFor: map[uuid.UUID]bool{userA: true}}

		supplements := []*model.Supplement{
			{SupplementID: uuid.New(), UserID: userA, Name: "ビタミンD", InventoryTotal: intPtr(2), LowInventoryThreshold: intPtr(5)},
			{SupplementID: uuid.New(), UserID: userB, Name: "鉄", InventoryTotal: intPtr(1), LowInventoryThreshold: intPtr(5)},
		}
		mockSupRepo.On("FindIndefiniteActiveWithInventory", ctx, mock.AnythingOfType("*gorm.DB"), []uuid.UUID(nil)).
			Return(supplements, nil).Once()
		mockUserRepo.On("FindByIDs", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("[]uuid.UUID")).
			Return([]*model.User{
				{UserID: userA, Email: "a@example.com", SystemNotificationsEnabled: true, RefillRemindersEnabled: true},
				{UserID: userB, Email: "b@example.com", SystemNotificationsEnabled: true, RefillRemindersEnabled: true},
			}, nil).Once()

		s := NewInventoryService(db, mockSupRepo, mockUserRepo, notifier)
		resp, err := s.RunRefillReminders(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.NotifiedUsers)
		require.Len(t, notifier.sentTo, 1)
		assert.Equal(t, userB, notifier.sentTo[0])
	})
}
