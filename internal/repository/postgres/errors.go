// internal/repository/postgres/errors.go
package postgres

import (
	"errors"
	"fmt"

	"rentpay/internal/util"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = pq.ErrorCode("23505")
	pqForeignKeyViolation = pq.ErrorCode("23503")
)

// classify wraps constraint violations in the matching util sentinel so services can use
// errors.Is without knowing about the driver.
func classify(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w (constraint %s)", msg, util.ErrDuplicateEntry, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w (constraint %s)", msg, util.ErrForeignKey, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
