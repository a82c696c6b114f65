// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentpay/internal/auth"
	"rentpay/internal/domain"
	"rentpay/internal/repository"
	"rentpay/internal/util"

	"github.com/google/uuid"
)

const (
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already taken"
	msgInvalidToken       = "Invalid or expired token"
)

// TokenManager issues and verifies bearer tokens. *auth.TokenManager implements it.
type TokenManager interface {
	Issue(userID uuid.UUID, username string) (string, time.Time, error)
	Verify(token string) (*auth.Claims, error)
}

// AuthService defines registration, login and token checks.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.AuthToken, error)
	Authenticate(token string) (*auth.Claims, error)
}

type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	hasher     auth.PasswordHasher
	tokens     TokenManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher auth.PasswordHasher,
	tokens TokenManager,
) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Register creates an account. The username is stored trimmed.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	creds := domain.Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := creds.ValidateForRegistration(); err != nil {
		return nil, util.InvalidInput(err.Error(), err)
	}

	hash, err := s.hasher.Hash(creds.Password)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("register: failed to hash password: %w", err))
	}

	user := domain.NewUser(creds.Username, hash)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if errors.Is(err, util.ErrDuplicateEntry) {
			return nil, util.Conflict(msgUsernameTaken, err)
		}
		return nil, util.Internal(fmt.Errorf("register: %w", err))
	}
	return user, nil
}

// Login checks the credentials and issues a token. Missing fields, an unknown user and a wrong
// password all produce the same error.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.AuthToken, error) {
	creds := domain.Credentials{Username: strings.TrimSpace(username), Password: password}
	if err := creds.Validate(); err != nil {
		return nil, util.Unauthorized(msgInvalidCredentials, nil)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, creds.Username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.Unauthorized(msgInvalidCredentials, nil)
		}
		return nil, util.Internal(fmt.Errorf("login: %w", err))
	}

	ok, err := s.hasher.Compare(user.PasswordHash, creds.Password)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("login: failed to verify password for user %s: %w", user.ID, err))
	}
	if !ok {
		return nil, util.Unauthorized(msgInvalidCredentials, nil)
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("login: %w", err))
	}
	return &domain.AuthToken{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Authenticate verifies a bearer token.
func (s *authService) Authenticate(token string) (*auth.Claims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, util.Unauthorized(msgInvalidToken, err)
	}
	return claims, nil
}
