package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/logger"
)

var driveColumns = []string{"id", "company_name", "cgpa", "branch", "domain", "deadline_date", "recruitment_rounds", "created_at"}

// DriveRepository handles recruitment drive database operations
type DriveRepository struct {
	baseRepository
}

// NewDriveRepository creates a new DriveRepository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{baseRepository: newBaseRepository(db)}
}

func scanDrive(row pgx.Row, d *models.RecruitmentDrive) error {
	return row.Scan(&d.ID, &d.CompanyName, &d.MinCGPA, &d.Branch, &d.Domain, &d.DeadlineDate, &d.RecruitmentRounds, &d.CreatedAt)
}

// Create inserts a drive
func (r *DriveRepository) Create(ctx context.Context, drive *models.RecruitmentDrive) (int64, error) {
	sql, args, err := r.sb.Insert("recruitment_forms").
		Columns("company_name", "cgpa", "branch", "domain", "deadline_date", "recruitment_rounds").
		Values(drive.CompanyName, drive.MinCGPA, drive.Branch, drive.Domain, drive.DeadlineDate, drive.RecruitmentRounds).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, apperrors.StorageFailure("build create drive query", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&drive.ID, &drive.CreatedAt); err != nil {
		logger.Error().Err(err).Str("company", drive.CompanyName).Msg("Error creating recruitment drive")
		return 0, apperrors.StorageFailure("create drive", err)
	}
	return drive.ID, nil
}

// GetByID retrieves a drive by ID
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.RecruitmentDrive, error) {
	sql, args, err := r.sb.Select(driveColumns...).
		From("recruitment_forms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build get drive query", err)
	}

	d := &models.RecruitmentDrive{}
	if err := scanDrive(r.q(ctx).QueryRow(ctx, sql, args...), d); err != nil {
		return nil, translateError("get drive", err, apperrors.ErrDriveNotFound, nil)
	}
	return d, nil
}

// List returns all drives in creation order
func (r *DriveRepository) List(ctx context.Context) ([]*models.RecruitmentDrive, error) {
	sql, args, err := r.sb.Select(driveColumns...).
		From("recruitment_forms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build list drives query", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying recruitment drives")
		return nil, apperrors.StorageFailure("list drives", err)
	}
	defer rows.Close()

	drives := []*models.RecruitmentDrive{}
	for rows.Next() {
		d := &models.RecruitmentDrive{}
		if err := scanDrive(rows, d); err != nil {
			return nil, apperrors.StorageFailure("scan drive row", err)
		}
		drives = append(drives, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StorageFailure("iterate drive rows", err)
	}
	return drives, nil
}

// Update replaces every mutable field of the drive identified by drive.ID
func (r *DriveRepository) Update(ctx context.Context, drive *models.RecruitmentDrive) error {
	sql, args, err := r.sb.Update("recruitment_forms").
		SetMap(map[string]interface{}{
			"company_name":       drive.CompanyName,
			"cgpa":               drive.MinCGPA,
			"branch":             drive.Branch,
			"domain":             drive.Domain,
			"deadline_date":      drive.DeadlineDate,
			"recruitment_rounds": drive.RecruitmentRounds,
		}).
		Where(squirrel.Eq{"id": drive.ID}).
		ToSql()
	if err != nil {
		return apperrors.StorageFailure("build update drive query", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("driveID", drive.ID).Msg("Error updating recruitment drive")
		return apperrors.StorageFailure("update drive", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}

// Delete removes a drive. Applications referencing it keep their row with a NULL drive_id.
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("recruitment_forms").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.StorageFailure("build delete drive query", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("driveID", id).Msg("Error deleting recruitment drive")
		return apperrors.StorageFailure("delete drive", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}
