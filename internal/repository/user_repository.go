//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
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

type UserRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByIDs(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) ([]*model.User, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User
	result := db.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user in DB", "error", result.Error, "user_id", userID.String())
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByIDs(ctx context.Context, db *gorm.DB, userIDs []uuid.UUID) ([]*model.User, error) {
	logger := middleware.GetLogger(ctx)
	if len(userIDs) == 0 {
		return nil, nil
	}
	var users []*model.User
	result := db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&users)
	if result.Error != nil {
		logger.Error("Error finding users in DB", "error", result.Error)
		return nil, fmt.Errorf("gormUserRepository.FindByIDs: %w", result.Error)
	}
	return users, nil
}
