package services

import (
	"context"
	"errors"
	"strings"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/filestorage"
	"github.com/technova/placement/internal/pkg/validation"
)

// logoSubPath is where uploaded company logos are stored
const logoSubPath = "logos"

// MockService defines mock interview listing operations
type MockService interface {
	Create(ctx context.Context, req *dto.CreateMockRequest) (*models.MockSession, error)
	List(ctx context.Context) ([]*models.MockSession, error)
	Delete(ctx context.Context, id int64) error
}

type mockServiceImpl struct {
	mockRepo repositories.IMockRepository
	storage  filestorage.FileStorage
}

// NewMockService creates a new mock service instance
func NewMockService(mockRepo repositories.IMockRepository, storage filestorage.FileStorage) MockService {
	return &mockServiceImpl{mockRepo: mockRepo, storage: storage}
}

// Create validates the listing, resolves its logo and stores it. An explicit
// logo URL wins over an uploaded file, and the upload is only written once
// every other field has passed validation.
func (s *mockServiceImpl) Create(ctx context.Context, req *dto.CreateMockRequest) (*models.MockSession, error) {
	company := strings.TrimSpace(req.CompanyName)
	if err := validation.Required("companyName", company); err != nil {
		return nil, err
	}

	link := strings.TrimSpace(req.MockLink)
	if err := validation.Required("mockLink", link); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate("mockDate", req.MockDate)
	if err != nil {
		return nil, err
	}

	duration, err := validation.ParseInt("duration", req.Duration, 1)
	if err != nil {
		return nil, err
	}

	unit := strings.ToLower(strings.TrimSpace(req.DurationUnit))
	if err := validation.Required("durationUnit", unit); err != nil {
		return nil, err
	}
	if !validation.IsValidDurationUnit(unit) {
		return nil, apperrors.NewValidationError("durationUnit", "durationUnit must be one of: "+strings.Join(validation.DurationUnits, ", "))
	}

	logoURL := strings.TrimSpace(req.CompanyLogoURL)
	if logoURL == "" {
		if req.CompanyLogo == nil {
			return nil, apperrors.NewValidationError("companyLogo", "a company logo file or companyLogoUrl is required")
		}
		if !filestorage.IsImageFile(req.CompanyLogo.Filename) {
			return nil, apperrors.NewValidationError("companyLogo", "companyLogo must be an image file")
		}
	}

	logo, uploaded, err := s.resolveLogo(ctx, logoURL, req)
	if err != nil {
		return nil, err
	}

	mock := &models.MockSession{
		CompanyLogo:  logo,
		CompanyName:  company,
		MockLink:     link,
		MockDate:     date,
		Duration:     duration,
		DurationUnit: unit,
	}
	if _, err := s.mockRepo.Create(ctx, mock); err != nil {
		if uploaded {
			if delErr := s.storage.DeleteFile(ctx, logo); delErr != nil {
				err = errors.Join(err, apperrors.StorageFailure("remove orphaned logo "+logo, delErr))
			}
		}
		return nil, err
	}
	return mock, nil
}

// resolveLogo returns the logo locator and whether a file was written for it
func (s *mockServiceImpl) resolveLogo(ctx context.Context, logoURL string, req *dto.CreateMockRequest) (string, bool, error) {
	if logoURL != "" {
		return logoURL, false, nil
	}
	path, err := s.storage.SaveFile(ctx, req.CompanyLogo, logoSubPath)
	if err != nil {
		return "", false, apperrors.StorageFailure("save company logo", err)
	}
	return path, true, nil
}

// List returns all mock sessions
func (s *mockServiceImpl) List(ctx context.Context) ([]*models.MockSession, error) {
	return s.mockRepo.List(ctx)
}

// Delete removes a mock session
func (s *mockServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.mockRepo.Delete(ctx, id)
}
