// internal/service/lifecycle_service_test.go
package service

import (
	"context"
	"testing"

	"supplement_keep/internal/model"
	"supplement_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_lifecycleService_AutoComplete(t *testing.T) {
	ctx := context.Background()
	today := "2024-03-10"

	t.Run("正常系: 終了日を過ぎたACTIVEだけが完了になる", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)

		expired := []*model.Supplement{
			{SupplementID: uuid.New(), Name: "ビタミンC", EndDate: strPtr("2024-03-01"), Status: model.StatusActive},
			{SupplementID: uuid.New(), Name: "亜鉛", EndDate: strPtr("2024-03-09"), Status: model.StatusActive},
		}
		ids := []uuid.UUID{expired[0].SupplementID, expired[1].SupplementID}

		mockSupRepo.On("FindExpiredActive", ctx, mock.AnythingOfType("*gorm.DB"), today).
			Return(expired, nil).Once()
		mockSupRepo.On("MarkCompleted", ctx, mock.AnythingOfType("*gorm.DB"), ids).
			Return(int64(2), nil).Once()

		s := NewLifecycleService(db, mockSupRepo)
		resp, err := s.AutoComplete(ctx, today)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.UpdatedCount)
		require.Len(t, resp.UpdatedSupplements, 2)
		assert.Equal(t, "2024-03-01", resp.UpdatedSupplements[0].EndDate)
		assert.Equal(t, "亜鉛", resp.UpdatedSupplements[1].Name)

		mockSupRepo.AssertExpectations(t)
	})

	t.Run("正常系: 対象なしなら更新しない（2回目の実行は空振り）", func(t *testing.T) {
		db := setupTestDB()
		mockSupRepo := new(mocks.SupplementRepository)

		mockSupRepo.On("FindExpiredActive", ctx, mock.AnythingOfType("*gorm.DB"), today).
			Return(nil, nil).Once()
		// MarkCompleted は呼ばれない

		s := NewLifecycleService(db, mockSupRepo)
		resp, err := s.AutoComplete(ctx, today)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Zero(t, resp.UpdatedCount)
		assert.Empty(t, resp.UpdatedSupplements)

		mockSupRepo.AssertExpectations(t)
	})
}
