// internal/domain/validation.go
package domain

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places amounts are stored with.
const MoneyScale = 2

// Credentials is the body of register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks that both fields are present. Length limits apply only to registration.
func (c Credentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.By(notBlank)),
		validation.Field(&c.Password, validation.Required),
	)
}

// ValidateForRegistration adds the limits applied to new accounts. bcrypt ignores input past
// 72 bytes, so longer passwords are rejected instead of silently truncated.
func (c Credentials) ValidateForRegistration() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Username, validation.Required, validation.By(notBlank), validation.Length(1, 64)),
		validation.Field(&c.Password, validation.Required, validation.Length(1, 72)),
	)
}

// Validate checks a payment creation request.
func (in CreatePaymentInput) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.UserID, validation.By(requiredUUID)),
		validation.Field(&in.Amount, validation.Required, validation.By(moneyAmount)),
		validation.Field(&in.Currency, validation.Required, validation.By(notBlank), validation.Length(3, 10)),
	)
	if err != nil {
		return err
	}
	if in.PeriodStart != nil && in.PeriodEnd != nil && in.PeriodEnd.Before(in.PeriodStart.Time) {
		return validation.Errors{"period_end": errors.New("must not be before period_start")}
	}
	return nil
}

// Validate checks a property creation request.
func (in CreatePropertyInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Address, validation.Required, validation.By(notBlank)),
		validation.Field(&in.CurrentRentAmount, validation.By(moneyAmount)),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func requiredUUID(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return errors.New("cannot be blank")
	}
	return nil
}

// moneyAmount accepts non-negative amounts with at most MoneyScale decimal places.
func moneyAmount(value interface{}) error {
	var d decimal.Decimal
	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case *decimal.Decimal:
		if v == nil {
			return nil
		}
		d = *v
	default:
		return errors.New("must be a decimal amount")
	}
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	if !d.Equal(d.Round(MoneyScale)) {
		return errors.New("must have at most 2 decimal places")
	}
	return nil
}
