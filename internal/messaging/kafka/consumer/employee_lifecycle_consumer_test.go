package consumer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateAudit(t *testing.T) {
	t.Run("unique violation on the audit constraint", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_lifecycle_audit_request_event"}
		assert.True(t, isDuplicateAudit(err))
	})

	t.Run("wrapped unique violation still detected", func(t *testing.T) {
		err := fmt.Errorf("create audit: %w", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_lifecycle_audit_request_event",
		})
		assert.True(t, isDuplicateAudit(err))
	})

	t.Run("message-only unique violation falls back to string match", func(t *testing.T) {
		err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_lifecycle_audit_request_event" (SQLSTATE 23505)`)
		assert.True(t, isDuplicateAudit(err))
	})

	t.Run("unique violation on a different constraint is not a duplicate", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_login_id"}
		assert.False(t, isDuplicateAudit(err))
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		assert.False(t, isDuplicateAudit(errors.New("connection reset by peer")))
		assert.False(t, isDuplicateAudit(&pgconn.PgError{Code: "23503", ConstraintName: "fk_audit_employee"}))
	})
}
