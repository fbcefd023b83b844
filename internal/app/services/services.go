package services

import (
	"context"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
)

// Services defined in this package:
// - AuthService: student and CDC registration, login and logout
// - CompanyService: company registration and administration
// - DriveService: recruitment drive CRUD
// - MockService: mock interview listings with logo resolution
// - EligibilityService: students eligible for a drive, and the roster export
// - ApplicationService: job application submission, update and withdrawal
//
// Services never log. They return apperrors values and leave messaging to
// the HTTP layer.

// Actor is the authenticated caller of an operation
type Actor struct {
	Subject string // roll number for students, admin name for CDC
	Role    models.RoleType
}

// IsStudent reports whether the actor holds a student session
func (a Actor) IsStudent() bool {
	return a.Role == models.RoleStudent
}

// ensureOwner rejects a student acting on another student's record
func (a Actor) ensureOwner(jntuNumber string) error {
	if a.IsStudent() && a.Subject != jntuNumber {
		return apperrors.NewForbiddenError("students may only act on their own applications")
	}
	return nil
}

// SnapshotRunner runs fn against one consistent read view of the store
type SnapshotRunner interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// directRunner runs fn without any transaction
type directRunner struct{}

func (directRunner) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
