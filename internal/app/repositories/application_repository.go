package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/dberrors"
	"github.com/technova/placement/internal/pkg/logger"
)

var applicationColumns = []string{
	"id", "company_name", "applicant_name", "jntu_number", "cgpa", "projects_count",
	"resume_link", "drive_id", "status", "application_date",
}

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	baseRepository
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{baseRepository: newBaseRepository(db)}
}

func scanApplication(row pgx.Row, a *models.JobApplication) error {
	return row.Scan(&a.ID, &a.CompanyName, &a.ApplicantName, &a.JNTUNumber, &a.CGPA,
		&a.ProjectsCount, &a.ResumeLink, &a.DriveID, &a.Status, &a.ApplicationDate)
}

// writeError classifies insert/update failures: duplicate (student, drive)
// pairs and dangling drive references.
func writeError(op string, err error) error {
	if dberrors.IsForeignKeyViolation(err) {
		return apperrors.ErrDriveNotFound
	}
	return translateError(op, err, nil, apperrors.ErrApplicationAlreadyExists)
}

// Create inserts an application; status and application_date come from the row defaults
func (r *ApplicationRepository) Create(ctx context.Context, app *models.JobApplication) (int64, error) {
	sql, args, err := r.sb.Insert("job_applications").
		Columns("company_name", "applicant_name", "jntu_number", "cgpa", "projects_count", "resume_link", "drive_id").
		Values(app.CompanyName, app.ApplicantName, app.JNTUNumber, app.CGPA, app.ProjectsCount, app.ResumeLink, app.DriveID).
		Suffix("RETURNING id, status, application_date").
		ToSql()
	if err != nil {
		return 0, apperrors.StorageFailure("build create application query", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&app.ID, &app.Status, &app.ApplicationDate); err != nil {
		err = writeError("create application", err)
		if apperrors.Is(err, apperrors.ErrStorageFailure) {
			logger.Error().Err(err).Str("jntuNumber", app.JNTUNumber).Msg("Error creating job application")
		}
		return 0, err
	}
	return app.ID, nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.JobApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("job_applications").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build get application query", err)
	}

	a := &models.JobApplication{}
	if err := scanApplication(r.q(ctx).QueryRow(ctx, sql, args...), a); err != nil {
		return nil, translateError("get application", err, apperrors.ErrApplicationNotFound, nil)
	}
	return a, nil
}

// ListByStudent returns a student's applications, most recent first
func (r *ApplicationRepository) ListByStudent(ctx context.Context, jntuNumber string) ([]*models.JobApplication, error) {
	return r.list(ctx, "list applications by student",
		squirrel.Eq{"jntu_number": jntuNumber}, "application_date DESC", "id DESC")
}

// ListByDrive returns the applications referencing a drive, oldest first
func (r *ApplicationRepository) ListByDrive(ctx context.Context, driveID int64) ([]*models.JobApplication, error) {
	return r.list(ctx, "list applications by drive",
		squirrel.Eq{"drive_id": driveID}, "application_date ASC", "id ASC")
}

func (r *ApplicationRepository) list(ctx context.Context, op string, where squirrel.Sqlizer, orderBy ...string) ([]*models.JobApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("job_applications").
		Where(where).
		OrderBy(orderBy...).
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build "+op+" query", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying job applications")
		return nil, apperrors.StorageFailure(op, err)
	}
	defer rows.Close()

	apps := []*models.JobApplication{}
	for rows.Next() {
		a := &models.JobApplication{}
		if err := scanApplication(rows, a); err != nil {
			return nil, apperrors.StorageFailure("scan application row", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StorageFailure("iterate application rows", err)
	}
	return apps, nil
}

// Update replaces applicant name, roll number, CGPA, project count and resume link
func (r *ApplicationRepository) Update(ctx context.Context, app *models.JobApplication) error {
	sql, args, err := r.sb.Update("job_applications").
		SetMap(map[string]interface{}{
			"applicant_name": app.ApplicantName,
			"jntu_number":    app.JNTUNumber,
			"cgpa":           app.CGPA,
			"projects_count": app.ProjectsCount,
			"resume_link":    app.ResumeLink,
		}).
		Where(squirrel.Eq{"id": app.ID}).
		ToSql()
	if err != nil {
		return apperrors.StorageFailure("build update application query", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		err = writeError("update application", err)
		if apperrors.Is(err, apperrors.ErrStorageFailure) {
			logger.Error().Err(err).Int64("applicationID", app.ID).Msg("Error updating job application")
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Delete removes an application by ID
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("job_applications").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return apperrors.StorageFailure("build delete application query", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("applicationID", id).Msg("Error deleting job application")
		return apperrors.StorageFailure("delete application", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}
