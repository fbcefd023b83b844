package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/logger"
)

var companyColumns = []string{"id", "company_name", "company_email", "password", "required_cgpa_threshold", "company_description", "created_at"}

// CompanyRepository handles company database operations
type CompanyRepository struct {
	baseRepository
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a company. A taken email yields ErrCompanyAlreadyExists.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) (int64, error) {
	sql, args, err := r.sb.Insert("company").
		Columns("company_name", "company_email", "password", "required_cgpa_threshold", "company_description").
		Values(company.Name, company.Email, company.Password, company.RequiredCGPAThreshold, company.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, apperrors.StorageFailure("build create company query", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&company.ID, &company.CreatedAt); err != nil {
		err = translateError("create company", err, nil, apperrors.ErrCompanyAlreadyExists)
		if !apperrors.Is(err, apperrors.ErrResourceAlreadyExists) {
			logger.Error().Err(err).Str("companyEmail", company.Email).Msg("Error creating company")
		}
		return 0, err
	}

	return company.ID, nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("company").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build get company query", err)
	}

	c := &models.Company{}
	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name, &c.Email, &c.Password, &c.RequiredCGPAThreshold, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, translateError("get company", err, apperrors.ErrCompanyNotFound, nil)
	}
	return c, nil
}

// List returns all companies ordered by ID
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("company").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build list companies query", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying companies")
		return nil, apperrors.StorageFailure("list companies", err)
	}
	defer rows.Close()

	companies := []*models.Company{}
	for rows.Next() {
		c := &models.Company{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Password, &c.RequiredCGPAThreshold, &c.Description, &c.CreatedAt); err != nil {
			return nil, apperrors.StorageFailure("scan company row", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StorageFailure("iterate company rows", err)
	}
	return companies, nil
}

// Delete removes a company by ID
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("company").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.StorageFailure("build delete company query", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("companyID", id).Msg("Error deleting company")
		return apperrors.StorageFailure("delete company", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}
	return nil
}
