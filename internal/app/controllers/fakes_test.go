package controllers

import (
	"bytes"
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/middleware"
	"github.com/technova/placement/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withSession stands in for JWTAuth
func withSession(subject string, role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeySubject, subject)
		c.Set(middleware.ContextKeyRole, role)
		c.Set(middleware.ContextKeyTokenID, "jti-"+subject)
		c.Set(middleware.ContextKeyExpiresAt, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
		c.Next()
	}
}

type fakeApplicationService struct {
	lastActor  services.Actor
	lastSubmit *dto.SubmitApplicationRequest
	listedFor  string
	err        error
}

func (f *fakeApplicationService) Submit(_ context.Context, actor services.Actor, req *dto.SubmitApplicationRequest) (*models.JobApplication, error) {
	f.lastActor = actor
	f.lastSubmit = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.JobApplication{ID: 1, CompanyName: req.CompanyName, JNTUNumber: req.JNTUNumber, Status: models.StatusUnderReview}, nil
}

func (f *fakeApplicationService) Update(_ context.Context, actor services.Actor, id int64, _ *dto.UpdateApplicationRequest) (*models.JobApplication, error) {
	f.lastActor = actor
	return &models.JobApplication{ID: id}, f.err
}

func (f *fakeApplicationService) Withdraw(_ context.Context, actor services.Actor, _ int64) error {
	f.lastActor = actor
	return f.err
}

func (f *fakeApplicationService) ListForStudent(_ context.Context, jntu string) ([]*models.JobApplication, error) {
	f.listedFor = jntu
	if jntu == "" {
		return nil, apperrors.NewValidationError("jntuNumber", "jntuNumber is required")
	}
	return []*models.JobApplication{{ID: 7, JNTUNumber: jntu, Status: models.StatusUnderReview}}, nil
}

func (f *fakeApplicationService) ListByDrive(_ context.Context, _ int64) ([]*models.JobApplication, error) {
	return []*models.JobApplication{}, f.err
}

type fakeMockService struct {
	lastCreate *dto.CreateMockRequest
}

func (f *fakeMockService) Create(_ context.Context, req *dto.CreateMockRequest) (*models.MockSession, error) {
	f.lastCreate = req
	return &models.MockSession{ID: 3, CompanyName: req.CompanyName, CompanyLogo: req.CompanyLogoURL}, nil
}

func (f *fakeMockService) List(context.Context) ([]*models.MockSession, error) {
	return []*models.MockSession{}, nil
}

func (f *fakeMockService) Delete(context.Context, int64) error {
	return apperrors.ErrMockNotFound
}

type fakeEligibilityService struct{}

func (fakeEligibilityService) EligibleStudents(_ context.Context, driveID int64) ([]*models.Student, error) {
	if driveID != 1 {
		return nil, apperrors.ErrDriveNotFound
	}
	return []*models.Student{{JNTUNumber: "A", Password: "secret-digest"}}, nil
}

func (fakeEligibilityService) ExportEligibleStudents(_ context.Context, driveID int64) (*bytes.Buffer, string, error) {
	if driveID != 1 {
		return nil, "", apperrors.ErrDriveNotFound
	}
	return bytes.NewBufferString("PK-workbook"), "eligible-1-acme-corp.xlsx", nil
}

type fakeAuthService struct {
	loggedOut string
}

func (f *fakeAuthService) RegisterStudent(_ context.Context, req *dto.StudentRegisterRequest) (*models.Student, error) {
	return &models.Student{ID: 1, JNTUNumber: req.JNTUNumber, Password: "digest"}, nil
}

func (f *fakeAuthService) RegisterCDC(_ context.Context, req *dto.CDCRegisterRequest) (*models.Admin, error) {
	return &models.Admin{ID: 1, AdminName: req.CDCName}, nil
}

func (f *fakeAuthService) LoginStudent(context.Context, *dto.StudentLoginRequest) (*dto.LoginResponse, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (f *fakeAuthService) LoginCDC(context.Context, *dto.CDCLoginRequest) (*dto.LoginResponse, error) {
	return nil, apperrors.ErrInvalidCredentials
}

func (f *fakeAuthService) Logout(_ context.Context, tokenID string, _ time.Time) error {
	f.loggedOut = tokenID
	return nil
}

func (f *fakeAuthService) GetStudent(context.Context, string) (*models.Student, error) {
	return nil, apperrors.ErrStudentNotFound
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }
