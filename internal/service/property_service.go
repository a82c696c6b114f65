// internal/service/property_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentpay/internal/domain"
	"rentpay/internal/repository"
	"rentpay/internal/util"
)

// PropertyService stores and lists properties.
type PropertyService interface {
	CreateProperty(ctx context.Context, in domain.CreatePropertyInput) (*domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

type propertyService struct {
	dbExecutor   repository.DBExecutor
	propertyRepo repository.PropertyRepository
}

func NewPropertyService(dbExecutor repository.DBExecutor, propertyRepo repository.PropertyRepository) PropertyService {
	return &propertyService{dbExecutor: dbExecutor, propertyRepo: propertyRepo}
}

func (s *propertyService) CreateProperty(ctx context.Context, in domain.CreatePropertyInput) (*domain.Property, error) {
	in.Address = strings.TrimSpace(in.Address)
	in.UnitNumber = normalizeOptional(in.UnitNumber)
	if err := in.Validate(); err != nil {
		return nil, util.InvalidInput(err.Error(), err)
	}

	property := domain.NewProperty(in)
	if err := s.propertyRepo.CreateProperty(ctx, s.dbExecutor, property); err != nil {
		if errors.Is(err, util.ErrForeignKey) {
			return nil, util.InvalidInput("Tenant does not exist", err)
		}
		return nil, util.Internal(fmt.Errorf("create property: %w", err))
	}
	return property, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.propertyRepo.ListProperties(ctx, s.dbExecutor)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("list properties: %w", err))
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	return properties, nil
}
