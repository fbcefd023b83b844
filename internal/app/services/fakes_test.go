package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/auth"
)

// In-memory stand-ins for the Postgres repositories. They enforce the same
// uniqueness and not-found rules as the schema.

type fakeStudentRepo struct {
	mu       sync.Mutex
	nextID   int64
	students map[string]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[string]*models.Student{}}
}

func (r *fakeStudentRepo) Create(_ context.Context, s *models.Student) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.students[s.JNTUNumber]; ok {
		return 0, apperrors.ErrStudentAlreadyExists
	}
	for _, existing := range r.students {
		if existing.Email == s.Email {
			return 0, apperrors.ErrStudentAlreadyExists
		}
	}
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	cp := *s
	r.students[s.JNTUNumber] = &cp
	return s.ID, nil
}

func (r *fakeStudentRepo) GetByJNTU(_ context.Context, jntu string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.students[jntu]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStudentRepo) ListEligible(_ context.Context, minCGPA float64, branch string) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Student{}
	for _, s := range r.students {
		if s.CGPA >= minCGPA && s.Branch == branch {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JNTUNumber < out[j].JNTUNumber })
	return out, nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	nextID int64
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*models.Admin{}}
}

func (r *fakeAdminRepo) Create(_ context.Context, a *models.Admin) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.admins[a.AdminName]; ok {
		return 0, apperrors.ErrAdminAlreadyExists
	}
	r.nextID++
	a.ID = r.nextID
	cp := *a
	r.admins[a.AdminName] = &cp
	return a.ID, nil
}

func (r *fakeAdminRepo) GetByName(_ context.Context, name string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[name]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	nextID    int64
	companies []*models.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *models.Company) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.companies {
		if existing.Email == c.Email {
			return 0, apperrors.ErrCompanyAlreadyExists
		}
	}
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.companies = append(r.companies, &cp)
	return c.ID, nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id int64) (*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*models.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.Company{}, r.companies...), nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.companies {
		if c.ID == id {
			r.companies = append(r.companies[:i], r.companies[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCompanyNotFound
}

type fakeDriveRepo struct {
	mu     sync.Mutex
	nextID int64
	drives map[int64]*models.RecruitmentDrive
}

func newFakeDriveRepo() *fakeDriveRepo {
	return &fakeDriveRepo{drives: map[int64]*models.RecruitmentDrive{}}
}

func (r *fakeDriveRepo) Create(_ context.Context, d *models.RecruitmentDrive) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	d.ID = r.nextID
	cp := *d
	r.drives[d.ID] = &cp
	return d.ID, nil
}

func (r *fakeDriveRepo) GetByID(_ context.Context, id int64) (*models.RecruitmentDrive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.drives[id]
	if !ok {
		return nil, apperrors.ErrDriveNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDriveRepo) List(_ context.Context) ([]*models.RecruitmentDrive, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.RecruitmentDrive{}
	for _, d := range r.drives {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDriveRepo) Update(_ context.Context, d *models.RecruitmentDrive) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drives[d.ID]; !ok {
		return apperrors.ErrDriveNotFound
	}
	cp := *d
	r.drives[d.ID] = &cp
	return nil
}

func (r *fakeDriveRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drives[id]; !ok {
		return apperrors.ErrDriveNotFound
	}
	delete(r.drives, id)
	return nil
}

type fakeMockRepo struct {
	mu      sync.Mutex
	nextID  int64
	mocks   map[int64]*models.MockSession
	failErr error
}

func newFakeMockRepo() *fakeMockRepo {
	return &fakeMockRepo{mocks: map[int64]*models.MockSession{}}
}

func (r *fakeMockRepo) Create(_ context.Context, m *models.MockSession) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return 0, r.failErr
	}
	r.nextID++
	m.ID = r.nextID
	cp := *m
	r.mocks[m.ID] = &cp
	return m.ID, nil
}

func (r *fakeMockRepo) List(_ context.Context) ([]*models.MockSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.MockSession{}
	for _, m := range r.mocks {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMockRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mocks[id]; !ok {
		return apperrors.ErrMockNotFound
	}
	delete(r.mocks, id)
	return nil
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	nextID int64
	clock  time.Time
	apps   map[int64]*models.JobApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  map[int64]*models.JobApplication{},
		clock: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakeApplicationRepo) Create(_ context.Context, a *models.JobApplication) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.DriveID != nil {
		for _, existing := range r.apps {
			if existing.DriveID != nil && *existing.DriveID == *a.DriveID && existing.JNTUNumber == a.JNTUNumber {
				return 0, apperrors.ErrApplicationAlreadyExists
			}
		}
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	a.ID = r.nextID
	a.ApplicationDate = r.clock
	if a.Status == "" {
		a.Status = models.StatusUnderReview
	}
	cp := *a
	r.apps[a.ID] = &cp
	return a.ID, nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id int64) (*models.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, jntu string) ([]*models.JobApplication, error) {
	return r.filter(func(a *models.JobApplication) bool { return a.JNTUNumber == jntu }, true), nil
}

func (r *fakeApplicationRepo) ListByDrive(_ context.Context, driveID int64) ([]*models.JobApplication, error) {
	return r.filter(func(a *models.JobApplication) bool { return a.DriveID != nil && *a.DriveID == driveID }, false), nil
}

func (r *fakeApplicationRepo) filter(keep func(*models.JobApplication) bool, newestFirst bool) []*models.JobApplication {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.JobApplication{}
	for _, a := range r.apps {
		if keep(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].ApplicationDate.After(out[j].ApplicationDate)
		}
		return out[i].ApplicationDate.Before(out[j].ApplicationDate)
	})
	return out
}

func (r *fakeApplicationRepo) Update(_ context.Context, a *models.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.apps[a.ID]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	cp := *a
	cp.ApplicationDate = existing.ApplicationDate
	r.apps[a.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return apperrors.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

// fakeHasher is a reversible stand-in for bcrypt
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Verify(plaintext, digest string) bool  { return digest == "hashed:"+plaintext }

type fakeIssuer struct{}

func (fakeIssuer) GenerateAccessToken(p auth.Principal) (*auth.IssuedToken, error) {
	return &auth.IssuedToken{
		AccessToken: fmt.Sprintf("token-%s-%s", p.Role, p.Subject),
		TokenID:     "jti-" + p.Subject,
		ExpiresAt:   time.Now().Add(time.Hour),
		ExpiresIn:   3600,
	}, nil
}

type fakeRevocations struct {
	revoked map[string]time.Time
}

func (f *fakeRevocations) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if f.revoked == nil {
		f.revoked = map[string]time.Time{}
	}
	f.revoked[tokenID] = expiresAt
	return nil
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := f.revoked[tokenID]
	return ok, nil
}

// fakeStorage records saved and deleted files
type fakeStorage struct {
	saved     []string
	deleted   []string
	deleteErr error
}

func (f *fakeStorage) SaveFile(_ context.Context, fh *multipart.FileHeader, subPath string) (string, error) {
	path := "uploads/" + subPath + "/" + strings.ToLower(fh.Filename)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, locator string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, locator)
	return nil
}

// recordingRunner counts snapshot scopes
type recordingRunner struct {
	calls int
}

func (r *recordingRunner) ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}
