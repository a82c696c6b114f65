// internal/repository/payment_repo.go
package repository

import (
	"context"

	"rentpay/internal/domain"

	"github.com/google/uuid"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, q DBExecutor, payment *domain.Payment) error
	GetPaymentByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Payment, error)
	// LockPaymentByID reads a payment and locks its row until the surrounding transaction ends.
	LockPaymentByID(ctx context.Context, q DBExecutor, id uuid.UUID) (*domain.Payment, error)
	// ListPayments returns matching payments, newest first.
	ListPayments(ctx context.Context, q DBExecutor, filter domain.PaymentFilter) ([]domain.Payment, error)
	// UpdatePaymentState persists status, amount_paid, transaction_id and updated_at.
	UpdatePaymentState(ctx context.Context, q DBExecutor, payment *domain.Payment) error
}
