package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/logger"
)

// MockRepository handles mock session database operations
type MockRepository struct {
	baseRepository
}

// NewMockRepository creates a new MockRepository
func NewMockRepository(db *pgxpool.Pool) *MockRepository {
	return &MockRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a mock session
func (r *MockRepository) Create(ctx context.Context, mock *models.MockSession) (int64, error) {
	sql, args, err := r.sb.Insert("mocks").
		Columns("company_logo", "company_name", "mock_link", "mock_date", "duration", "duration_unit").
		Values(mock.CompanyLogo, mock.CompanyName, mock.MockLink, mock.MockDate, mock.Duration, mock.DurationUnit).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, apperrors.StorageFailure("build create mock query", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&mock.ID, &mock.CreatedAt); err != nil {
		logger.Error().Err(err).Str("company", mock.CompanyName).Msg("Error creating mock session")
		return 0, apperrors.StorageFailure("create mock", err)
	}
	return mock.ID, nil
}

// List returns all mock sessions, soonest first
func (r *MockRepository) List(ctx context.Context) ([]*models.MockSession, error) {
	sql, args, err := r.sb.Select("id", "company_logo", "company_name", "mock_link", "mock_date", "duration", "duration_unit", "created_at").
		From("mocks").
		OrderBy("mock_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build list mocks query", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying mock sessions")
		return nil, apperrors.StorageFailure("list mocks", err)
	}
	defer rows.Close()

	mocks := []*models.MockSession{}
	for rows.Next() {
		m := &models.MockSession{}
		if err := rows.Scan(&m.ID, &m.CompanyLogo, &m.CompanyName, &m.MockLink, &m.MockDate, &m.Duration, &m.DurationUnit, &m.CreatedAt); err != nil {
			return nil, apperrors.StorageFailure("scan mock row", err)
		}
		mocks = append(mocks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StorageFailure("iterate mock rows", err)
	}
	return mocks, nil
}

// Delete removes a mock session by ID
func (r *MockRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("mocks").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.StorageFailure("build delete mock query", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("mockID", id).Msg("Error deleting mock session")
		return apperrors.StorageFailure("delete mock", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMockNotFound
	}
	return nil
}
