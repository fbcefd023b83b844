package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/auth"
	"github.com/technova/placement/internal/pkg/tokenstore"
	"github.com/technova/placement/internal/pkg/validation"
)

// TokenIssuer signs session tokens
type TokenIssuer interface {
	GenerateAccessToken(p auth.Principal) (*auth.IssuedToken, error)
}

// AuthService defines account registration and session operations
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.StudentRegisterRequest) (*models.Student, error)
	RegisterCDC(ctx context.Context, req *dto.CDCRegisterRequest) (*models.Admin, error)
	LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error)
	LoginCDC(ctx context.Context, req *dto.CDCLoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	GetStudent(ctx context.Context, jntuNumber string) (*models.Student, error)
}

type authServiceImpl struct {
	studentRepo repositories.IStudentRepository
	adminRepo   repositories.IAdminRepository
	hasher      auth.PasswordHasher
	tokens      TokenIssuer
	revocations tokenstore.RevocationStore

	// digest compared against when the account does not exist, so unknown
	// and known accounts cost the same hash comparison
	dummyOnce   sync.Once
	dummyDigest string
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	adminRepo repositories.IAdminRepository,
	hasher auth.PasswordHasher,
	tokens TokenIssuer,
	revocations tokenstore.RevocationStore,
) AuthService {
	if revocations == nil {
		revocations = tokenstore.NopStore{}
	}
	return &authServiceImpl{
		studentRepo: studentRepo,
		adminRepo:   adminRepo,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
	}
}

// RegisterStudent validates and stores a new student account
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.StudentRegisterRequest) (*models.Student, error) {
	jntu := strings.TrimSpace(req.JNTUNumber)
	if err := validation.Required("jntuNumber", jntu); err != nil {
		return nil, err
	}
	if !validation.IsValidRollNumber(jntu) {
		return nil, apperrors.NewValidationError("jntuNumber", "jntuNumber must be 4-20 letters or digits")
	}

	email := strings.TrimSpace(req.Email)
	if err := validation.Required("email", email); err != nil {
		return nil, err
	}
	if !validation.IsValidEmail(email) {
		return nil, apperrors.NewValidationError("email", "email must be a valid email address")
	}

	if err := s.checkPassword(req.Password); err != nil {
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

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		JNTUNumber: jntu,
		Email:      strings.ToLower(email),
		Password:   digest,
		CGPA:       cgpa,
		Branch:     req.Branch,
	}
	if _, err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// RegisterCDC validates and stores a new placement cell admin
func (s *authServiceImpl) RegisterCDC(ctx context.Context, req *dto.CDCRegisterRequest) (*models.Admin, error) {
	name := strings.TrimSpace(req.CDCName)
	if err := validation.Required("cdcName", name); err != nil {
		return nil, err
	}
	if err := s.checkPassword(req.Password); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{AdminName: name, Password: digest}
	if req.CDCID != nil && strings.TrimSpace(*req.CDCID) != "" {
		id := strings.TrimSpace(*req.CDCID)
		admin.AdminID = &id
	}

	if _, err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// LoginStudent verifies a student's password and issues a STUDENT session
func (s *authServiceImpl) LoginStudent(ctx context.Context, req *dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	jntu := strings.TrimSpace(req.JNTUNumber)
	if err := validation.Required("jntu_number", jntu); err != nil {
		return nil, err
	}
	if err := validation.Required("password", req.Password); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByJNTU(ctx, jntu)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.hasher.Verify(req.Password, s.dummy())
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, student.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(student.JNTUNumber, models.RoleStudent)
}

// LoginCDC verifies an admin's password and issues a CDC session
func (s *authServiceImpl) LoginCDC(ctx context.Context, req *dto.CDCLoginRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(req.AdminName)
	if err := validation.Required("adminName", name); err != nil {
		return nil, err
	}
	if err := validation.Required("adminPassword", req.AdminPassword); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.hasher.Verify(req.AdminPassword, s.dummy())
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.AdminPassword, admin.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(admin.AdminName, models.RoleCDC)
}

// Logout revokes a session token until it would have expired anyway
func (s *authServiceImpl) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return apperrors.ErrTokenInvalid
	}
	return s.revocations.Revoke(ctx, tokenID, expiresAt)
}

// GetStudent looks a student up by roll number
func (s *authServiceImpl) GetStudent(ctx context.Context, jntuNumber string) (*models.Student, error) {
	jntu := strings.TrimSpace(jntuNumber)
	if err := validation.Required("jntuNumber", jntu); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByJNTU(ctx, jntu)
}

func (s *authServiceImpl) checkPassword(password string) error {
	return validation.CheckPassword("password", password)
}

func (s *authServiceImpl) issue(subject string, role models.RoleType) (*dto.LoginResponse, error) {
	token, err := s.tokens.GenerateAccessToken(auth.Principal{Subject: subject, Role: string(role)})
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: token.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   token.ExpiresIn,
		},
		Role:    role,
		Subject: subject,
	}, nil
}

func (s *authServiceImpl) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyDigest, _ = s.hasher.Hash("placement-dummy-password")
	})
	return s.dummyDigest
}
