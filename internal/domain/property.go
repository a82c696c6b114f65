// internal/domain/property.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property represents a rentable unit.
type Property struct {
	ID                uuid.UUID       `db:"id" json:"id"`
	Address           string          `db:"address" json:"address"`
	UnitNumber        *string         `db:"unit_number" json:"unit_number"`
	CurrentRentAmount decimal.Decimal `db:"current_rent_amount" json:"current_rent_amount"`
	CurrentTenantID   *uuid.UUID      `db:"current_tenant_id" json:"current_tenant_id"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at" json:"updated_at"`
}

// CreatePropertyInput is the data required to register a property.
type CreatePropertyInput struct {
	Address           string          `json:"address"`
	UnitNumber        *string         `json:"unit_number"`
	CurrentRentAmount decimal.Decimal `json:"current_rent_amount"`
	CurrentTenantID   *uuid.UUID      `json:"current_tenant_id"`
}

// NewProperty creates a new Property instance from validated input.
func NewProperty(in CreatePropertyInput) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:                uuid.New(),
		Address:           in.Address,
		UnitNumber:        in.UnitNumber,
		CurrentRentAmount: in.CurrentRentAmount,
		CurrentTenantID:   in.CurrentTenantID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
