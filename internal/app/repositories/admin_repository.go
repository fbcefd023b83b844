package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/logger"
)

// AdminRepository handles CDC admin database operations
type AdminRepository struct {
	baseRepository
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts an admin. A taken name yields ErrAdminAlreadyExists.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("cdc").
		Columns("admin_name", "password", "admin_id").
		Values(admin.AdminName, admin.Password, admin.AdminID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, apperrors.StorageFailure("build create admin query", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.CreatedAt); err != nil {
		err = translateError("create admin", err, nil, apperrors.ErrAdminAlreadyExists)
		if !apperrors.Is(err, apperrors.ErrResourceAlreadyExists) {
			logger.Error().Err(err).Str("adminName", admin.AdminName).Msg("Error creating admin")
		}
		return 0, err
	}

	return admin.ID, nil
}

// GetByName retrieves an admin by name
func (r *AdminRepository) GetByName(ctx context.Context, adminName string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "admin_name", "password", "admin_id", "created_at").
		From("cdc").
		Where(squirrel.Eq{"admin_name": adminName}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build get admin query", err)
	}

	admin := &models.Admin{}
	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(&admin.ID, &admin.AdminName, &admin.Password, &admin.AdminID, &admin.CreatedAt)
	if err != nil {
		return nil, translateError("get admin", err, apperrors.ErrAdminNotFound, nil)
	}

	return admin, nil
}
