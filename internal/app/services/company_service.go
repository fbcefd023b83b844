package services

import (
	"context"
	"strings"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/auth"
	"github.com/technova/placement/internal/pkg/validation"
)

// CompanyService defines company-related operations. Companies have no login.
type CompanyService interface {
	Register(ctx context.Context, req *dto.CompanyRegisterRequest) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Delete(ctx context.Context, id int64) error
}

type companyServiceImpl struct {
	companyRepo repositories.ICompanyRepository
	hasher      auth.PasswordHasher
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companyRepo repositories.ICompanyRepository, hasher auth.PasswordHasher) CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo, hasher: hasher}
}

// Register stores a company with a hashed password
func (s *companyServiceImpl) Register(ctx context.Context, req *dto.CompanyRegisterRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.CompanyName)
	if err := validation.Required("company_name", name); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.CompanyEmail)
	if err := validation.Required("company_email", email); err != nil {
		return nil, err
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("company_email", "company_email must be a valid email address")
	}

	if err := validation.CheckPassword("password", req.Password); err != nil {
		return nil, err
	}

	var threshold float64
	if strings.TrimSpace(req.RequiredCGPAThreshold.String()) != "" {
		v, err := validation.ParseCGPA("required_cgpa_threshold", req.RequiredCGPAThreshold.String())
		if err != nil {
			return nil, err
		}
		threshold = v
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	company := &models.Company{
		Name:                  name,
		Email:                 strings.ToLower(email),
		Password:              digest,
		RequiredCGPAThreshold: threshold,
		Description:           strings.TrimSpace(req.CompanyDescription),
	}
	if _, err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// List returns all registered companies
func (s *companyServiceImpl) List(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.List(ctx)
}

// Delete removes a company
func (s *companyServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.companyRepo.Delete(ctx, id)
}
