package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"schooldir/internal/model"
)

// SchoolRepository defines school persistence operations. List expects
// sortField and order to have been validated against allow-lists already;
// they are interpolated into the ORDER BY clause.
type SchoolRepository interface {
	Create(ctx context.Context, school *model.School) error
	List(ctx context.Context, sortField, order string) ([]model.SchoolSummary, error)
	Count(ctx context.Context) (int64, error)
	LastAddedName(ctx context.Context) (string, error)
	MostViewedName(ctx context.Context) (string, error)
}

type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository creates a new school repository.
func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) Create(ctx context.Context, school *model.School) error {
	return r.db.WithContext(ctx).Create(school).Error
}

func (r *schoolRepository) List(ctx context.Context, sortField, order string) ([]model.SchoolSummary, error) {
	var schools []model.SchoolSummary
	err := r.db.WithContext(ctx).
		Model(&model.School{}).
		Select("id", "name", "address", "city", "image").
		Order(fmt.Sprintf("%s %s", sortField, order)).
		Find(&schools).Error
	if err != nil {
		return nil, err
	}
	return schools, nil
}

func (r *schoolRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.School{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// LastAddedName returns the most recently created school's name, or
// gorm.ErrRecordNotFound when the table is empty.
func (r *schoolRepository) LastAddedName(ctx context.Context) (string, error) {
	var school model.School
	err := r.db.WithContext(ctx).
		Select("name").
		Order("created_at DESC").
		First(&school).Error
	if err != nil {
		return "", err
	}
	return school.Name, nil
}

// MostViewedName returns the name of the school with the highest view count,
// or gorm.ErrRecordNotFound when the table is empty.
func (r *schoolRepository) MostViewedName(ctx context.Context) (string, error) {
	var school model.School
	err := r.db.WithContext(ctx).
		Select("name").
		Order("views DESC").
		First(&school).Error
	if err != nil {
		return "", err
	}
	return school.Name, nil
}
