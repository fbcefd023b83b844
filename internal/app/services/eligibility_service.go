package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/export"
)

// EligibilityService computes which students qualify for a drive
type EligibilityService interface {
	EligibleStudents(ctx context.Context, driveID int64) ([]*models.Student, error)
	ExportEligibleStudents(ctx context.Context, driveID int64) (*bytes.Buffer, string, error)
}

type eligibilityServiceImpl struct {
	driveRepo   repositories.IDriveRepository
	studentRepo repositories.IStudentRepository
	snapshots   SnapshotRunner
}

// NewEligibilityService creates a new eligibility service. A nil runner reads
// without a shared snapshot.
func NewEligibilityService(driveRepo repositories.IDriveRepository, studentRepo repositories.IStudentRepository, snapshots SnapshotRunner) EligibilityService {
	if snapshots == nil {
		snapshots = directRunner{}
	}
	return &eligibilityServiceImpl{
		driveRepo:   driveRepo,
		studentRepo: studentRepo,
		snapshots:   snapshots,
	}
}

// EligibleStudents returns every student with CGPA at or above the drive's
// minimum in exactly the drive's branch. An empty result is not an error.
func (s *eligibilityServiceImpl) EligibleStudents(ctx context.Context, driveID int64) ([]*models.Student, error) {
	_, students, err := s.match(ctx, driveID)
	return students, err
}

func (s *eligibilityServiceImpl) match(ctx context.Context, driveID int64) (*models.RecruitmentDrive, []*models.Student, error) {
	var (
		drive    *models.RecruitmentDrive
		students []*models.Student
	)
	err := s.snapshots.ReadSnapshot(ctx, func(ctx context.Context) error {
		var err error
		drive, err = s.driveRepo.GetByID(ctx, driveID)
		if err != nil {
			return err
		}
		students, err = s.studentRepo.ListEligible(ctx, drive.MinCGPA, drive.Branch)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return drive, students, nil
}

// ExportEligibleStudents renders the eligible roster as an .xlsx workbook and
// suggests a file name for it.
func (s *eligibilityServiceImpl) ExportEligibleStudents(ctx context.Context, driveID int64) (*bytes.Buffer, string, error) {
	drive, students, err := s.match(ctx, driveID)
	if err != nil {
		return nil, "", err
	}

	table := export.Table{
		Sheet:  "Eligible Students",
		Header: []string{"Roll Number", "Email", "CGPA", "Branch"},
		Rows:   make([][]interface{}, 0, len(students)),
	}
	for _, st := range students {
		table.Rows = append(table.Rows, []interface{}{st.JNTUNumber, st.Email, st.CGPA, st.Branch})
	}

	buf := &bytes.Buffer{}
	if err := export.WriteXLSX(buf, table); err != nil {
		return nil, "", err
	}

	return buf, fmt.Sprintf("eligible-%d-%s.xlsx", drive.ID, slug(drive.CompanyName)), nil
}

// slug lowercases s and keeps letters and digits, joining the rest with '-'
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
