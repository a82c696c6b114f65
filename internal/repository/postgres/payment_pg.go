// internal/repository/postgres/payment_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rentpay/internal/domain"
	"rentpay/internal/repository"
	"rentpay/internal/util"

	"github.com/google/uuid"
)

const paymentColumns = `id, user_id, property_id, amount, amount_paid, currency, status, notes,
       transaction_id, due_date, period_start, period_end, created_at, updated_at`

// PaymentRepository implements repository.PaymentRepository for PostgreSQL.
type PaymentRepository struct{}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository() repository.PaymentRepository {
	return &PaymentRepository{}
}

// CreatePayment inserts a new payment record.
func (r *PaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	query := `INSERT INTO payments (id, user_id, property_id, amount, amount_paid, currency, status, notes,
                                    transaction_id, due_date, period_start, period_end, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := q.ExecContext(ctx, query,
		payment.ID,
		payment.UserID,
		payment.PropertyID,
		payment.Amount,
		payment.AmountPaid,
		payment.Currency,
		payment.Status,
		payment.Notes,
		payment.TransactionID,
		payment.DueDate,
		payment.PeriodStart,
		payment.PeriodEnd,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if err != nil {
		return classify(err, "failed to create payment")
	}
	return nil
}

// GetPaymentByID retrieves a payment by its ID.
func (r *PaymentRepository) GetPaymentByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Payment, error) {
	return r.getOne(ctx, q, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
}

// LockPaymentByID retrieves a payment with SELECT ... FOR UPDATE. It must run inside a transaction.
func (r *PaymentRepository) LockPaymentByID(ctx context.Context, q repository.DBExecutor, id uuid.UUID) (*domain.Payment, error) {
	return r.getOne(ctx, q, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id)
}

func (r *PaymentRepository) getOne(ctx context.Context, q repository.DBExecutor, query string, id uuid.UUID) (*domain.Payment, error) {
	var payment domain.Payment
	if err := q.GetContext(ctx, &payment, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment %s: %w", id, err)
	}
	return &payment, nil
}

// ListPayments retrieves payments matching every non-nil filter field, newest first.
func (r *PaymentRepository) ListPayments(ctx context.Context, q repository.DBExecutor, filter domain.PaymentFilter) ([]domain.Payment, error) {
	query, args := buildListPaymentsQuery(filter)

	payments := []domain.Payment{}
	if err := q.SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func buildListPaymentsQuery(filter domain.PaymentFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.PropertyID != nil {
		args = append(args, *filter.PropertyID)
		conditions = append(conditions, fmt.Sprintf("property_id = $%d", len(args)))
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + paymentColumns + ` FROM payments`)
	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(" ORDER BY created_at DESC, id DESC")
	return b.String(), args
}

// UpdatePaymentState writes the mutable lifecycle fields of a payment.
func (r *PaymentRepository) UpdatePaymentState(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	query := `UPDATE payments
              SET status = $1, amount_paid = $2, transaction_id = $3, updated_at = $4
              WHERE id = $5`
	result, err := q.ExecContext(ctx, query, payment.Status, payment.AmountPaid, payment.TransactionID, payment.UpdatedAt, payment.ID)
	if err != nil {
		return classify(err, "failed to update payment %s", payment.ID)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating payment %s: %w", payment.ID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("payment %s: %w", payment.ID, util.ErrNotFound)
	}
	return nil
}
