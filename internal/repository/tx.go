package repository

import (
	"errors"

	apperrors "pc-builder-backend/internal/errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Retryable MySQL server errors: lock wait timeout and deadlock. Both roll
// the transaction back server-side, so a single re-run is safe.
const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrLockDeadlock    = 1213
)

func isRetryable(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrLockWaitTimeout || mysqlErr.Number == mysqlErrLockDeadlock
	}
	return false
}

// inTransaction runs fn inside a transaction with rollback on any error.
// Retryable store failures are retried once; a second failure is surfaced as
// a TransientError so the HTTP layer maps it to a 500 without leaking detail.
func inTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err == nil || !isRetryable(err) {
		return err
	}
	if err = db.Transaction(fn); err != nil {
		return apperrors.NewTransientError(err)
	}
	return nil
}
