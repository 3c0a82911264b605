package dberrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"github.com/yigit/studentroster/internal/pkg/apperrors"
)

// PostgreSQL error codes the roster reacts to.
const (
	CodeUndefinedColumn = "42703"
	CodeUndefinedTable  = "42P01"
)

// Classify maps an error returned by pgx to the application taxonomy.
// Dial failures become apperrors.ErrConnectionFailed; everything else is a
// DatabaseError.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", apperrors.ErrConnectionFailed, err)
	}
	return apperrors.NewDatabaseError(err)
}

// Code returns the SQLSTATE of a PostgreSQL error, or "" for other errors.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsSchemaError reports whether the statement referenced a missing table or column.
func IsSchemaError(err error) bool {
	code := Code(err)
	return code == CodeUndefinedColumn || code == CodeUndefinedTable
}
