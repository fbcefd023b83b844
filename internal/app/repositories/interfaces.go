package repositories

import (
	"context"

	"github.com/technova/placement/internal/app/models"
)

// IStudentRepository defines persistence operations for students
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByJNTU(ctx context.Context, jntuNumber string) (*models.Student, error)
	ListEligible(ctx context.Context, minCGPA float64, branch string) ([]*models.Student, error)
}

// IAdminRepository defines persistence operations for CDC admins
type IAdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) (int64, error)
	GetByName(ctx context.Context, adminName string) (*models.Admin, error)
}

// ICompanyRepository defines persistence operations for companies
type ICompanyRepository interface {
	Create(ctx context.Context, company *models.Company) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

// IDriveRepository defines persistence operations for recruitment drives
type IDriveRepository interface {
	Create(ctx context.Context, drive *models.RecruitmentDrive) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.RecruitmentDrive, error)
	List(ctx context.Context) ([]*models.RecruitmentDrive, error)
	Update(ctx context.Context, drive *models.RecruitmentDrive) error
	Delete(ctx context.Context, id int64) error
}

// IMockRepository defines persistence operations for mock sessions
type IMockRepository interface {
	Create(ctx context.Context, mock *models.MockSession) (int64, error)
	List(ctx context.Context) ([]*models.MockSession, error)
	Delete(ctx context.Context, id int64) error
}

// IApplicationRepository defines persistence operations for job applications
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.JobApplication, error)
	ListByStudent(ctx context.Context, jntuNumber string) ([]*models.JobApplication, error)
	ListByDrive(ctx context.Context, driveID int64) ([]*models.JobApplication, error)
	Update(ctx context.Context, app *models.JobApplication) error
	Delete(ctx context.Context, id int64) error
}
