package postgres

import (
	"errors"
	"testing"

	"rentpay/internal/domain"
	"rentpay/internal/util"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestBuildListPaymentsQuery(t *testing.T) {
	userID := uuid.New()
	propertyID := uuid.New()

	tests := []struct {
		name      string
		filter    domain.PaymentFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{"NoFilter", domain.PaymentFilter{}, "", nil},
		{"UserOnly", domain.PaymentFilter{UserID: &userID}, " WHERE user_id = $1", []interface{}{userID}},
		{"PropertyOnly", domain.PaymentFilter{PropertyID: &propertyID}, " WHERE property_id = $1", []interface{}{propertyID}},
		{"Both", domain.PaymentFilter{UserID: &userID, PropertyID: &propertyID}, " WHERE user_id = $1 AND property_id = $2", []interface{}{userID, propertyID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildListPaymentsQuery(tt.filter)

			assert.Equal(t, "SELECT "+paymentColumns+" FROM payments"+tt.wantWhere+" ORDER BY created_at DESC, id DESC", query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestClassify(t *testing.T) {
	dup := classify(&pq.Error{Code: "23505", Constraint: "users_username_key"}, "failed to create user")
	assert.ErrorIs(t, dup, util.ErrDuplicateEntry)
	assert.Contains(t, dup.Error(), "users_username_key")

	fk := classify(&pq.Error{Code: "23503"}, "failed to create payment")
	assert.ErrorIs(t, fk, util.ErrForeignKey)

	other := errors.New("connection refused")
	wrapped := classify(other, "failed to update payment %d", 7)
	assert.ErrorIs(t, wrapped, other)
	assert.False(t, errors.Is(wrapped, util.ErrDuplicateEntry))
	assert.Equal(t, "failed to update payment 7: connection refused", wrapped.Error())
}
