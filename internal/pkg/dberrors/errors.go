package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// UniqueViolation is the Postgres SQLSTATE for unique_violation.
const UniqueViolation = "23505"

// ForeignKeyViolation is the Postgres SQLSTATE for foreign_key_violation.
const ForeignKeyViolation = "23503"

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports a unique violation on any constraint.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == UniqueViolation
}

// IsForeignKeyViolation reports a foreign key violation on any constraint.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == ForeignKeyViolation
}
