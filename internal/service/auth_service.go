package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"schooldir/internal/auth"
	apperrors "schooldir/internal/errors"
	"schooldir/internal/model"
	"schooldir/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, login, password string) (token string, user *model.User, err error)
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

// Login verifies credentials against the user store and issues a session
// token. The login value matches either username or email. Unknown user and
// wrong password both come back as ErrInvalidCredentials so the response
// leaks nothing about account existence.
func (s *authService) Login(ctx context.Context, login, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// CurrentUser resolves a session token to its user row. The row is re-read
// from storage so a deleted account stops resolving immediately.
func (s *authService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return user, nil
}
