// internal/repository/user_repo.go
package repository

import (
	"context"

	"rentpay/internal/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user. A taken username yields an error wrapping util.ErrDuplicateEntry.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByUsername returns util.ErrNotFound when no user has the given username.
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
}
