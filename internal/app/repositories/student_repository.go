package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/dberrors"
	"github.com/technova/placement/internal/pkg/logger"
)

var studentColumns = []string{"id", "jntu_number", "email", "password", "cgpa", "branch", "created_at"}

// StudentRepository handles student database operations
type StudentRepository struct {
	baseRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a student. A taken roll number or email yields ErrStudentAlreadyExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("jntu_number", "email", "password", "cgpa", "branch").
		Values(student.JNTUNumber, student.Email, student.Password, student.CGPA, student.Branch).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, apperrors.StorageFailure("build create student query", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return 0, &apperrors.CustomError{
				Err:     apperrors.ErrStudentAlreadyExists,
				Message: "a student with this email already exists",
				Field:   "email",
			}
		}
		err = translateError("create student", err, nil, apperrors.ErrStudentAlreadyExists)
		if !apperrors.Is(err, apperrors.ErrResourceAlreadyExists) {
			logger.Error().Err(err).Str("jntuNumber", student.JNTUNumber).Msg("Error creating student")
		}
		return 0, err
	}

	return student.ID, nil
}

// GetByJNTU retrieves a student by roll number
func (r *StudentRepository) GetByJNTU(ctx context.Context, jntuNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"jntu_number": jntuNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build get student query", err)
	}

	student := &models.Student{}
	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.JNTUNumber, &student.Email, &student.Password,
		&student.CGPA, &student.Branch, &student.CreatedAt,
	)
	if err != nil {
		return nil, translateError("get student", err, apperrors.ErrStudentNotFound, nil)
	}

	return student, nil
}

// ListEligible returns every student with cgpa >= minCGPA in exactly branch
func (r *StudentRepository) ListEligible(ctx context.Context, minCGPA float64, branch string) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.GtOrEq{"cgpa": minCGPA}).
		Where(squirrel.Eq{"branch": branch}).
		OrderBy("cgpa DESC", "jntu_number ASC").
		ToSql()
	if err != nil {
		return nil, apperrors.StorageFailure("build eligible students query", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying eligible students")
		return nil, apperrors.StorageFailure("list eligible students", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.JNTUNumber, &s.Email, &s.Password, &s.CGPA, &s.Branch, &s.CreatedAt); err != nil {
			return nil, apperrors.StorageFailure("scan student row", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StorageFailure("iterate student rows", err)
	}

	return students, nil
}
