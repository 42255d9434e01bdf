package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"yotei.link/configs/configslog"
	"yotei.link/models"
	"yotei.link/repositories"
)

// AuthServiceError is the typed error family for authentication.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "invalid username or password"
	ErrUsernameTaken      AuthServiceError = "that username is already taken"
	ErrWeakPassword       AuthServiceError = "password must be at least 8 characters"
	ErrUsernameRequired   AuthServiceError = "username is required"
)

// IAuthService registers accounts and verifies credentials. It only
// establishes identity; sessions are the middleware's business.
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// AuthService implements IAuthService.
type AuthService struct {
	users repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// Register creates an account with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	configslog.SLog.Infow("User registered", "userID", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate checks the credentials and returns the account. Unknown
// user and wrong password collapse into the same error.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
