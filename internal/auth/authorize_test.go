package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

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

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		claims         interface{}
		setupMock      func(*MockUserRepository)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:   "admin allowed",
			claims: &Claims{UserID: 1, Username: "admin", Role: "admin"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Role: model.RoleAdmin}, nil)
			},
			expectNext: true,
		},
		{
			name:   "stale admin claim rejected when store says user",
			claims: &Claims{UserID: 2, Username: "demoted", Role: "admin"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(2)).Return(&model.User{ID: 2, Role: model.RoleUser}, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "subject row missing",
			claims: &Claims{UserID: 3, Username: "ghost", Role: "admin"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "store failure is internal",
			claims: &Claims{UserID: 4, Username: "admin", Role: "admin"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(4)).Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "no claims in context",
			claims:         nil,
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/add-school", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.claims != nil {
				c.Set("user", tt.claims)
			}

			nextCalled := false
			next := func(c echo.Context) error {
				nextCalled = true
				return c.NoContent(http.StatusOK)
			}

			err := RequireRole(mockRepo, model.RoleAdmin)(next)(c)

			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectNext {
				assert.NoError(t, err)
				subject, ok := c.Get(SubjectKey).(*model.User)
				assert.True(t, ok)
				assert.Equal(t, model.RoleAdmin, subject.Role)
			} else {
				var httpErr *echo.HTTPError
				assert.ErrorAs(t, err, &httpErr)
				assert.Equal(t, tt.expectedStatus, httpErr.Code)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
