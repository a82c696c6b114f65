// internal/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentpay/internal/domain"
	"rentpay/internal/repository"
	"rentpay/internal/util"
	"rentpay/pkg/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgPaymentNotFound      = "Payment not found"
	msgUnknownReference     = "Referenced user or property does not exist"
	msgDuplicateTransaction = "Transaction ID already recorded"
)

// PaymentService defines the interface for payment-related business logic.
type PaymentService interface {
	CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.Payment, error)
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error)
	MarkFailed(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error)
	MarkOverdue(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	ApplyPartialPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, transactionID *string) (*domain.Payment, error)
}

// paymentService implements the PaymentService interface.
type paymentService struct {
	dbBeginner  db.DBTxBeginner       // For status transitions, which lock the payment row
	dbExecutor  repository.DBExecutor // For non-transactional reads and inserts
	paymentRepo repository.PaymentRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
	now         func() time.Time
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	paymentRepo repository.PaymentRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) PaymentService {
	return &paymentService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		paymentRepo: paymentRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
		now:         time.Now,
	}
}

// CreatePayment records a new pending payment.
func (s *paymentService) CreatePayment(ctx context.Context, in domain.CreatePaymentInput) (*domain.Payment, error) {
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	in.Notes = normalizeOptional(in.Notes)
	if err := in.Validate(); err != nil {
		return nil, util.InvalidInput(err.Error(), err)
	}

	payment := domain.NewPayment(in)
	if err := s.paymentRepo.CreatePayment(ctx, s.dbExecutor, payment); err != nil {
		if errors.Is(err, util.ErrForeignKey) {
			return nil, util.InvalidInput(msgUnknownReference, err)
		}
		return nil, util.Internal(fmt.Errorf("create payment: %w", err))
	}
	return payment, nil
}

// ListPayments returns the payments matching filter, newest first. The result is never nil.
func (s *paymentService) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, s.dbExecutor, filter)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("list payments: %w", err))
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	return payments, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(ctx, s.dbExecutor, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.NotFound(msgPaymentNotFound, err)
		}
		return nil, util.Internal(fmt.Errorf("get payment %s: %w", id, err))
	}
	return payment, nil
}

// MarkCompleted settles a payment in full.
func (s *paymentService) MarkCompleted(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error) {
	transactionID = normalizeOptional(transactionID)
	return s.transition(ctx, "mark completed", id, func(p *domain.Payment, now time.Time) error {
		return p.MarkCompleted(transactionID, now)
	})
}

// MarkFailed records a failed settlement attempt.
func (s *paymentService) MarkFailed(ctx context.Context, id uuid.UUID, transactionID *string) (*domain.Payment, error) {
	transactionID = normalizeOptional(transactionID)
	return s.transition(ctx, "mark failed", id, func(p *domain.Payment, now time.Time) error {
		return p.MarkFailed(transactionID, now)
	})
}

// MarkOverdue flags an unsettled payment as past due.
func (s *paymentService) MarkOverdue(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return s.transition(ctx, "mark overdue", id, func(p *domain.Payment, now time.Time) error {
		return p.MarkOverdue(now)
	})
}

// ApplyPartialPayment adds amount to what has been paid on the payment.
func (s *paymentService) ApplyPartialPayment(ctx context.Context, id uuid.UUID, amount decimal.Decimal, transactionID *string) (*domain.Payment, error) {
	if !amount.Equal(amount.Round(domain.MoneyScale)) {
		return nil, util.InvalidInput("amount: must have at most 2 decimal places", nil)
	}
	transactionID = normalizeOptional(transactionID)
	return s.transition(ctx, "apply partial payment", id, func(p *domain.Payment, now time.Time) error {
		return p.ApplyPartialPayment(amount, transactionID, now)
	})
}

// transition locks the payment row, applies change and persists the new state in one transaction.
func (s *paymentService) transition(ctx context.Context, op string, id uuid.UUID, change func(*domain.Payment, time.Time) error) (*domain.Payment, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, util.Internal(fmt.Errorf("%s: failed to begin transaction: %w", op, err))
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, util.Internal(fmt.Errorf("%s: transaction controller does not implement DBExecutor", op))
	}

	payment, err := s.paymentRepo.LockPaymentByID(ctx, txExecutor, id)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.NotFound(msgPaymentNotFound, err)
		}
		return nil, util.Internal(fmt.Errorf("%s: failed to lock payment %s: %w", op, id, err))
	}

	if err := change(payment, s.now()); err != nil {
		var transitionErr *domain.TransitionError
		switch {
		case errors.As(err, &transitionErr):
			return nil, util.Conflict(transitionErr.Error(), err)
		case errors.Is(err, domain.ErrNonPositiveAmount), errors.Is(err, domain.ErrOverpayment):
			return nil, util.InvalidInput(err.Error(), err)
		default:
			return nil, util.Internal(fmt.Errorf("%s: %w", op, err))
		}
	}

	if err := s.paymentRepo.UpdatePaymentState(ctx, txExecutor, payment); err != nil {
		if errors.Is(err, util.ErrDuplicateEntry) {
			return nil, util.Conflict(msgDuplicateTransaction, err)
		}
		return nil, util.Internal(fmt.Errorf("%s: failed to update payment %s: %w", op, id, err))
	}

	if err := s.commitTx(txController); err != nil {
		return nil, util.Internal(fmt.Errorf("%s: failed to commit transaction: %w", op, err))
	}
	return payment, nil
}

// normalizeOptional trims s and maps an empty result to nil.
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
