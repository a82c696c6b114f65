// internal/repository/postgres/property_pg.go
package postgres

import (
	"context"
	"fmt"

	"rentpay/internal/domain"
	"rentpay/internal/repository"
)

// PropertyRepository implements repository.PropertyRepository for PostgreSQL.
type PropertyRepository struct{}

func NewPropertyRepository() repository.PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, q repository.DBExecutor, property *domain.Property) error {
	query := `INSERT INTO properties (id, address, unit_number, current_rent_amount, current_tenant_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		property.ID,
		property.Address,
		property.UnitNumber,
		property.CurrentRentAmount,
		property.CurrentTenantID,
		property.CreatedAt,
		property.UpdatedAt,
	)
	if err != nil {
		return classify(err, "failed to create property")
	}
	return nil
}

func (r *PropertyRepository) ListProperties(ctx context.Context, q repository.DBExecutor) ([]domain.Property, error) {
	properties := []domain.Property{}
	query := `SELECT id, address, unit_number, current_rent_amount, current_tenant_id, created_at, updated_at
              FROM properties
              ORDER BY address, unit_number`
	if err := q.SelectContext(ctx, &properties, query); err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}
