package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"schooldir/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockSchoolRepository is a mock implementation of SchoolRepository.
type MockSchoolRepository struct {
	mock.Mock
}

func (m *MockSchoolRepository) Create(ctx context.Context, school *model.School) error {
	args := m.Called(ctx, school)
	return args.Error(0)
}

func (m *MockSchoolRepository) List(ctx context.Context, sortField, order string) ([]model.SchoolSummary, error) {
	args := m.Called(ctx, sortField, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SchoolSummary), args.Error(1)
}

func (m *MockSchoolRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSchoolRepository) LastAddedName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSchoolRepository) MostViewedName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockFavouriteRepository is a mock implementation of FavouriteRepository.
type MockFavouriteRepository struct {
	mock.Mock
}

func (m *MockFavouriteRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeImageStore records saves and deletes instead of touching real storage.
type fakeImageStore struct {
	saveRef   string
	saveErr   error
	saved     []string
	deleted   []string
	deleteErr error
}

func (f *fakeImageStore) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, originalName)
	return f.saveRef, nil
}

func (f *fakeImageStore) Delete(ctx context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	return f.deleteErr
}
