package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/db"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/dberrors"
)

// baseRepository carries the pool and a Postgres statement builder
type baseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func newBaseRepository(pool *pgxpool.Pool) baseRepository {
	return baseRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// q returns the transaction carried by ctx, if any, else the pool
func (r baseRepository) q(ctx context.Context) db.Querier {
	return db.QuerierFrom(ctx, r.db)
}

// translateError maps driver errors onto the apperrors taxonomy. A nil
// notFound or duplicate leaves that case to StorageFailure.
func translateError(op string, err error, notFound, duplicate error) error {
	switch {
	case notFound != nil && errors.Is(err, pgx.ErrNoRows):
		return notFound
	case duplicate != nil && dberrors.IsUniqueViolation(err):
		return duplicate
	default:
		return apperrors.StorageFailure(op, err)
	}
}
