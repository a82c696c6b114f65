// internal/domain/payment.go
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment. Values match the payment_status enum.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusCompleted     PaymentStatus = "completed"
	PaymentStatusFailed        PaymentStatus = "failed"
	PaymentStatusOverdue       PaymentStatus = "overdue"
	PaymentStatusPartiallyPaid PaymentStatus = "partiallypaid"
)

// allowedTransitions lists, per state, the states a payment may move to.
// Completed and Failed are terminal.
var allowedTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:       {PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusOverdue, PaymentStatusPartiallyPaid},
	PaymentStatusOverdue:       {PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusPartiallyPaid},
	PaymentStatusPartiallyPaid: {PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusOverdue, PaymentStatusPartiallyPaid},
}

// Valid reports whether s is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusOverdue, PaymentStatusPartiallyPaid:
		return true
	}
	return false
}

// CanTransitionTo reports whether a payment in state s may move to next.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible from s.
func (s PaymentStatus) Terminal() bool {
	return len(allowedTransitions[s]) == 0
}

// TransitionError is returned when a status change is not allowed from the current state.
type TransitionError struct {
	From PaymentStatus
	To   PaymentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("payment cannot move from %s to %s", e.From, e.To)
}

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrOverpayment       = errors.New("amount exceeds the outstanding balance")
)

// Payment represents a rent payment record.
type Payment struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	UserID        uuid.UUID       `db:"user_id" json:"user_id"`
	PropertyID    *uuid.UUID      `db:"property_id" json:"property_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"` // NUMERIC(12, 2) in DB
	AmountPaid    decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	Currency      string          `db:"currency" json:"currency"`
	Status        PaymentStatus   `db:"status" json:"status"`
	Notes         *string         `db:"notes" json:"notes"`
	TransactionID *string         `db:"transaction_id" json:"transaction_id"` // external reference, unique when set
	DueDate       *Date           `db:"due_date" json:"due_date"`
	PeriodStart   *Date           `db:"period_start" json:"period_start"`
	PeriodEnd     *Date           `db:"period_end" json:"period_end"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// CreatePaymentInput is the data accepted when recording a new payment.
type CreatePaymentInput struct {
	UserID      uuid.UUID        `json:"user_id"`
	PropertyID  *uuid.UUID       `json:"property_id"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    string           `json:"currency"`
	Notes       *string          `json:"notes"`
	DueDate     *Date            `json:"due_date"`
	PeriodStart *Date            `json:"period_start"`
	PeriodEnd   *Date            `json:"period_end"`
}

// PaymentFilter narrows ListPayments. Nil fields impose no constraint.
type PaymentFilter struct {
	UserID     *uuid.UUID
	PropertyID *uuid.UUID
}

// NewPayment creates a Pending payment from validated input. The status and transaction id
// never come from the caller.
func NewPayment(in CreatePaymentInput) *Payment {
	now := time.Now().UTC()
	p := &Payment{
		ID:          uuid.New(),
		UserID:      in.UserID,
		PropertyID:  in.PropertyID,
		AmountPaid:  decimal.Zero,
		Currency:    in.Currency,
		Status:      PaymentStatusPending,
		Notes:       in.Notes,
		DueDate:     in.DueDate,
		PeriodStart: in.PeriodStart,
		PeriodEnd:   in.PeriodEnd,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	return p
}

// Outstanding returns the part of the amount not yet paid.
func (p *Payment) Outstanding() decimal.Decimal {
	return p.Amount.Sub(p.AmountPaid)
}

func (p *Payment) transition(next PaymentStatus, now time.Time) error {
	if !p.Status.CanTransitionTo(next) {
		return &TransitionError{From: p.Status, To: next}
	}
	p.Status = next
	p.UpdatedAt = now.UTC()
	return nil
}

// MarkCompleted settles the payment in full.
func (p *Payment) MarkCompleted(transactionID *string, now time.Time) error {
	if err := p.transition(PaymentStatusCompleted, now); err != nil {
		return err
	}
	p.AmountPaid = p.Amount
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	return nil
}

// MarkFailed records a failed settlement attempt.
func (p *Payment) MarkFailed(transactionID *string, now time.Time) error {
	if err := p.transition(PaymentStatusFailed, now); err != nil {
		return err
	}
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	return nil
}

// MarkOverdue flags an unsettled payment as past due.
func (p *Payment) MarkOverdue(now time.Time) error {
	return p.transition(PaymentStatusOverdue, now)
}

// ApplyPartialPayment adds amount to what has been paid. The payment becomes Completed once
// nothing is outstanding and PartiallyPaid otherwise. The transaction id of the latest
// instalment is kept.
func (p *Payment) ApplyPartialPayment(amount decimal.Decimal, transactionID *string, now time.Time) error {
	if !p.Status.CanTransitionTo(PaymentStatusPartiallyPaid) {
		return &TransitionError{From: p.Status, To: PaymentStatusPartiallyPaid}
	}
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if amount.GreaterThan(p.Outstanding()) {
		return ErrOverpayment
	}

	paid := p.AmountPaid.Add(amount)
	next := PaymentStatusPartiallyPaid
	if paid.GreaterThanOrEqual(p.Amount) {
		next = PaymentStatusCompleted
	}
	if err := p.transition(next, now); err != nil {
		return err
	}
	p.AmountPaid = paid
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	return nil
}
