package services

import (
	"context"
	"strings"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/validation"
)

// DriveService defines recruitment drive operations
type DriveService interface {
	Create(ctx context.Context, req *dto.DriveRequest) (*models.RecruitmentDrive, error)
	Get(ctx context.Context, id int64) (*models.RecruitmentDrive, error)
	List(ctx context.Context) ([]*models.RecruitmentDrive, error)
	Update(ctx context.Context, id int64, req *dto.DriveRequest) (*models.RecruitmentDrive, error)
	Delete(ctx context.Context, id int64) error
}

type driveServiceImpl struct {
	driveRepo repositories.IDriveRepository
}

// NewDriveService creates a new drive service instance
func NewDriveService(driveRepo repositories.IDriveRepository) DriveService {
	return &driveServiceImpl{driveRepo: driveRepo}
}

// driveFromRequest validates every field of a full drive record
func driveFromRequest(req *dto.DriveRequest) (*models.RecruitmentDrive, error) {
	company := strings.TrimSpace(req.CompanyName)
	if err := validation.Required("company_name", company); err != nil {
		return nil, err
	}

	cgpa, err := validation.ParseCGPA("cgpa", req.CGPA.String())
	if err != nil {
		return nil, err
	}

	if err := validation.Required("branch", req.Branch); err != nil {
		return nil, err
	}
	if !validation.IsValidBranch(req.Branch) {
		return nil, apperrors.NewValidationError("branch", "branch must be one of: "+strings.Join(validation.Branches, ", "))
	}

	domain := strings.TrimSpace(req.Domain)
	if err := validation.Required("domain", domain); err != nil {
		return nil, err
	}

	deadline, err := validation.ParseDate("deadline_date", req.DeadlineDate)
	if err != nil {
		return nil, err
	}

	rounds, err := validation.ParseInt("recruitment_rounds", req.RecruitmentRounds.String(), 1)
	if err != nil {
		return nil, err
	}

	return &models.RecruitmentDrive{
		CompanyName:       company,
		MinCGPA:           cgpa,
		Branch:            req.Branch,
		Domain:            domain,
		DeadlineDate:      deadline,
		RecruitmentRounds: rounds,
	}, nil
}

// Create validates and stores a new drive
func (s *driveServiceImpl) Create(ctx context.Context, req *dto.DriveRequest) (*models.RecruitmentDrive, error) {
	drive, err := driveFromRequest(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

// Get returns a drive by ID
func (s *driveServiceImpl) Get(ctx context.Context, id int64) (*models.RecruitmentDrive, error) {
	return s.driveRepo.GetByID(ctx, id)
}

// List returns all drives in ascending ID order
func (s *driveServiceImpl) List(ctx context.Context) ([]*models.RecruitmentDrive, error) {
	return s.driveRepo.List(ctx)
}

// Update replaces the whole drive record
func (s *driveServiceImpl) Update(ctx context.Context, id int64, req *dto.DriveRequest) (*models.RecruitmentDrive, error) {
	drive, err := driveFromRequest(req)
	if err != nil {
		return nil, err
	}
	drive.ID = id
	if err := s.driveRepo.Update(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

// Delete removes a drive
func (s *driveServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.driveRepo.Delete(ctx, id)
}
