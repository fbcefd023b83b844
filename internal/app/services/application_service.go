package services

import (
	"context"
	"strings"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/validation"
)

// ApplicationService defines the job application lifecycle
type ApplicationService interface {
	Submit(ctx context.Context, actor Actor, req *dto.SubmitApplicationRequest) (*models.JobApplication, error)
	Update(ctx context.Context, actor Actor, id int64, req *dto.UpdateApplicationRequest) (*models.JobApplication, error)
	Withdraw(ctx context.Context, actor Actor, id int64) error
	ListForStudent(ctx context.Context, jntuNumber string) ([]*models.JobApplication, error)
	ListByDrive(ctx context.Context, driveID int64) ([]*models.JobApplication, error)
}

type applicationServiceImpl struct {
	appRepo   repositories.IApplicationRepository
	driveRepo repositories.IDriveRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(appRepo repositories.IApplicationRepository, driveRepo repositories.IDriveRepository) ApplicationService {
	return &applicationServiceImpl{appRepo: appRepo, driveRepo: driveRepo}
}

// applicantFields are the fields shared by submit and update
type applicantFields struct {
	name       string
	jntuNumber string
	cgpa       float64
	projects   int
	resumeLink string
}

func parseApplicantFields(name, jntu string, cgpaRaw, projectsRaw dto.NumericString, resume string) (*applicantFields, error) {
	f := &applicantFields{
		name:       strings.TrimSpace(name),
		jntuNumber: strings.TrimSpace(jntu),
		resumeLink: strings.TrimSpace(resume),
	}

	if err := validation.Required("name", f.name); err != nil {
		return nil, err
	}
	if err := validation.Required("jntu_number", f.jntuNumber); err != nil {
		return nil, err
	}

	var err error
	if f.cgpa, err = validation.ParseCGPA("cgpa", cgpaRaw.String()); err != nil {
		return nil, err
	}
	if f.projects, err = validation.ParseInt("projects", projectsRaw.String(), 0); err != nil {
		return nil, err
	}

	if err := validation.Required("resume_link", f.resumeLink); err != nil {
		return nil, err
	}
	return f, nil
}

// Submit validates and stores a new application with status "Under Review".
// Nothing is persisted when any field is missing or malformed.
func (s *applicationServiceImpl) Submit(ctx context.Context, actor Actor, req *dto.SubmitApplicationRequest) (*models.JobApplication, error) {
	company := strings.TrimSpace(req.CompanyName)
	if err := validation.Required("company_name", company); err != nil {
		return nil, err
	}

	f, err := parseApplicantFields(req.Name, req.JNTUNumber, req.CGPA, req.Projects, req.ResumeLink)
	if err != nil {
		return nil, err
	}

	if err := actor.ensureOwner(f.jntuNumber); err != nil {
		return nil, err
	}

	if req.DriveID != nil {
		if _, err := s.driveRepo.GetByID(ctx, *req.DriveID); err != nil {
			return nil, err
		}
	}

	app := &models.JobApplication{
		CompanyName:   company,
		ApplicantName: f.name,
		JNTUNumber:    f.jntuNumber,
		CGPA:          f.cgpa,
		ProjectsCount: f.projects,
		ResumeLink:    f.resumeLink,
		DriveID:       req.DriveID,
		Status:        models.StatusUnderReview,
	}
	if _, err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Update replaces the applicant fields of an existing application
func (s *applicationServiceImpl) Update(ctx context.Context, actor Actor, id int64, req *dto.UpdateApplicationRequest) (*models.JobApplication, error) {
	f, err := parseApplicantFields(req.Name, req.JNTUNumber, req.CGPA, req.Projects, req.ResumeLink)
	if err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := actor.ensureOwner(app.JNTUNumber); err != nil {
		return nil, err
	}
	// A student cannot hand their application over to another roll number
	if err := actor.ensureOwner(f.jntuNumber); err != nil {
		return nil, err
	}

	app.ApplicantName = f.name
	app.JNTUNumber = f.jntuNumber
	app.CGPA = f.cgpa
	app.ProjectsCount = f.projects
	app.ResumeLink = f.resumeLink

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Withdraw deletes an application. Withdrawing twice reports not found.
func (s *applicationServiceImpl) Withdraw(ctx context.Context, actor Actor, id int64) error {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := actor.ensureOwner(app.JNTUNumber); err != nil {
		return err
	}
	return s.appRepo.Delete(ctx, id)
}

// ListForStudent returns a student's applications, most recent first
func (s *applicationServiceImpl) ListForStudent(ctx context.Context, jntuNumber string) ([]*models.JobApplication, error) {
	jntu := strings.TrimSpace(jntuNumber)
	if err := validation.Required("jntuNumber", jntu); err != nil {
		return nil, err
	}
	return s.appRepo.ListByStudent(ctx, jntu)
}

// ListByDrive returns the applications referencing a drive
func (s *applicationServiceImpl) ListByDrive(ctx context.Context, driveID int64) ([]*models.JobApplication, error) {
	if _, err := s.driveRepo.GetByID(ctx, driveID); err != nil {
		return nil, err
	}
	return s.appRepo.ListByDrive(ctx, driveID)
}
