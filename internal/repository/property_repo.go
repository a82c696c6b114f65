// internal/repository/property_repo.go
package repository

import (
	"context"

	"rentpay/internal/domain"
)

type PropertyRepository interface {
	CreateProperty(ctx context.Context, q DBExecutor, property *domain.Property) error
	ListProperties(ctx context.Context, q DBExecutor) ([]domain.Property, error)
}
