package repository

import (
	"context"

	"gorm.io/gorm"

	"schooldir/internal/model"
)

// FavouriteRepository defines favourite persistence operations.
type FavouriteRepository interface {
	Count(ctx context.Context) (int64, error)
}

type favouriteRepository struct {
	db *gorm.DB
}

// NewFavouriteRepository creates a new favourite repository.
func NewFavouriteRepository(db *gorm.DB) FavouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Favourite{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
