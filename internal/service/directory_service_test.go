package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"schooldir/internal/model"
)

func TestDirectoryService_ListSchools_SortAllowList(t *testing.T) {
	summaries := []model.SchoolSummary{
		{ID: 1, Name: "Greenwood High", City: "Springfield"},
	}

	tests := []struct {
		name          string
		sortBy        string
		order         string
		expectedField string
		expectedOrder string
	}{
		{name: "defaults", sortBy: "", order: "", expectedField: "name", expectedOrder: "ASC"},
		{name: "city desc", sortBy: "city", order: "DESC", expectedField: "city", expectedOrder: "DESC"},
		{name: "created_at", sortBy: "created_at", order: "ASC", expectedField: "created_at", expectedOrder: "ASC"},
		{name: "lowercase order normalized", sortBy: "name", order: "desc", expectedField: "name", expectedOrder: "DESC"},
		{
			name:          "injection attempt falls back to defaults",
			sortBy:        "name; DROP TABLE schools--",
			order:         "DESC; --",
			expectedField: "name",
			expectedOrder: "ASC",
		},
		{name: "unknown field falls back", sortBy: "views", order: "DESC", expectedField: "name", expectedOrder: "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSchools := new(MockSchoolRepository)
			// The repository only ever sees allow-listed values, never the
			// raw query parameters.
			mockSchools.On("List", mock.Anything, tt.expectedField, tt.expectedOrder).Return(summaries, nil)

			svc := NewDirectoryService(mockSchools, new(MockFavouriteRepository), nil)
			schools, err := svc.ListSchools(context.Background(), tt.sortBy, tt.order)

			assert.NoError(t, err)
			assert.Equal(t, summaries, schools)
			mockSchools.AssertExpectations(t)
		})
	}
}

func TestDirectoryService_Stats(t *testing.T) {
	t.Run("populated tables", func(t *testing.T) {
		mockSchools := new(MockSchoolRepository)
		mockFavs := new(MockFavouriteRepository)
		mockSchools.On("Count", mock.Anything).Return(int64(12), nil)
		mockSchools.On("LastAddedName", mock.Anything).Return("Hilltop Public School", nil)
		mockSchools.On("MostViewedName", mock.Anything).Return("Riverside Academy", nil)
		mockFavs.On("Count", mock.Anything).Return(int64(5), nil)

		svc := NewDirectoryService(mockSchools, mockFavs, nil)
		stats, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.SchoolCount)
		assert.Equal(t, "Hilltop Public School", stats.LastAdded)
		assert.Equal(t, "Riverside Academy", stats.MostViewed)
		assert.Equal(t, int64(5), stats.FavouritesCount)
	})

	t.Run("empty tables degrade to sentinels", func(t *testing.T) {
		mockSchools := new(MockSchoolRepository)
		mockFavs := new(MockFavouriteRepository)
		mockSchools.On("Count", mock.Anything).Return(int64(0), nil)
		mockSchools.On("LastAddedName", mock.Anything).Return("", gorm.ErrRecordNotFound)
		mockSchools.On("MostViewedName", mock.Anything).Return("", gorm.ErrRecordNotFound)
		mockFavs.On("Count", mock.Anything).Return(int64(0), nil)

		svc := NewDirectoryService(mockSchools, mockFavs, nil)
		stats, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.SchoolCount)
		assert.Equal(t, "N/A", stats.LastAdded)
		assert.Equal(t, "N/A", stats.MostViewed)
		assert.Equal(t, int64(0), stats.FavouritesCount)
	})

	t.Run("one failing sub-query does not fail the call", func(t *testing.T) {
		mockSchools := new(MockSchoolRepository)
		mockFavs := new(MockFavouriteRepository)
		mockSchools.On("Count", mock.Anything).Return(int64(3), nil)
		mockSchools.On("LastAddedName", mock.Anything).Return("Greenwood High", nil)
		mockSchools.On("MostViewedName", mock.Anything).Return("Greenwood High", nil)
		mockFavs.On("Count", mock.Anything).Return(int64(0), gorm.ErrInvalidDB)

		svc := NewDirectoryService(mockSchools, mockFavs, nil)
		stats, err := svc.Stats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), stats.SchoolCount)
		assert.Equal(t, int64(0), stats.FavouritesCount)
	})
}
