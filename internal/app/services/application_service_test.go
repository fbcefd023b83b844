package services

import (
	"context"
	"errors"
	"testing"

	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/pkg/apperrors"
)

var cdcActor = Actor{Subject: "officer", Role: models.RoleCDC}

func studentActor(jntu string) Actor {
	return Actor{Subject: jntu, Role: models.RoleStudent}
}

func validSubmission() *dto.SubmitApplicationRequest {
	return &dto.SubmitApplicationRequest{
		CompanyName: "Acme Corp",
		Name:        "Ravi Kumar",
		JNTUNumber:  "22341A0594",
		CGPA:        "8.9",
		Projects:    "3",
		ResumeLink:  "https://drive.example/resume.pdf",
	}
}

func newTestApplicationService() (ApplicationService, *fakeApplicationRepo, *fakeDriveRepo) {
	apps := newFakeApplicationRepo()
	drives := newFakeDriveRepo()
	return NewApplicationService(apps, drives), apps, drives
}

func TestApplicationService_SubmitThenList(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	ctx := context.Background()

	app, err := svc.Submit(ctx, studentActor("22341A0594"), validSubmission())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	list, err := svc.ListForStudent(ctx, "22341A0594")
	if err != nil {
		t.Fatalf("ListForStudent() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d applications, want 1", len(list))
	}
	got := list[0]
	if got.ID != app.ID || got.CompanyName != "Acme Corp" {
		t.Errorf("listed = %+v", got)
	}
	if got.Status != "Under Review" {
		t.Errorf("Status = %q, want Under Review", got.Status)
	}
	if got.CGPA != 8.9 || got.ProjectsCount != 3 {
		t.Errorf("numeric fields = %v / %d", got.CGPA, got.ProjectsCount)
	}
}

func TestApplicationService_ListForStudent_NewestFirst(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	ctx := context.Background()

	for _, company := range []string{"First", "Second", "Third"} {
		req := validSubmission()
		req.CompanyName = company
		if _, err := svc.Submit(ctx, cdcActor, req); err != nil {
			t.Fatal(err)
		}
	}
	other := validSubmission()
	other.JNTUNumber = "22341A0001"
	if _, err := svc.Submit(ctx, cdcActor, other); err != nil {
		t.Fatal(err)
	}

	list, err := svc.ListForStudent(ctx, "22341A0594")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d, want 3", len(list))
	}
	if list[0].CompanyName != "Third" || list[2].CompanyName != "First" {
		t.Errorf("order = %s, %s, %s", list[0].CompanyName, list[1].CompanyName, list[2].CompanyName)
	}
}

func TestApplicationService_Submit_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.SubmitApplicationRequest)
		field  string
	}{
		{"non numeric cgpa", func(r *dto.SubmitApplicationRequest) { r.CGPA = "abc" }, "cgpa"},
		{"NaN cgpa", func(r *dto.SubmitApplicationRequest) { r.CGPA = "NaN" }, "cgpa"},
		{"infinite cgpa", func(r *dto.SubmitApplicationRequest) { r.CGPA = "Inf" }, "cgpa"},
		{"negative projects", func(r *dto.SubmitApplicationRequest) { r.Projects = "-1" }, "projects"},
		{"fractional projects", func(r *dto.SubmitApplicationRequest) { r.Projects = "2.5" }, "projects"},
		{"missing company", func(r *dto.SubmitApplicationRequest) { r.CompanyName = " " }, "company_name"},
		{"missing name", func(r *dto.SubmitApplicationRequest) { r.Name = "" }, "name"},
		{"missing roll number", func(r *dto.SubmitApplicationRequest) { r.JNTUNumber = "" }, "jntu_number"},
		{"missing resume", func(r *dto.SubmitApplicationRequest) { r.ResumeLink = "" }, "resume_link"},
		{"missing cgpa", func(r *dto.SubmitApplicationRequest) { r.CGPA = "" }, "cgpa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestApplicationService()
			req := validSubmission()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), cdcActor, req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("error = %v, want ErrValidationFailed", err)
			}
			var ce *apperrors.CustomError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Errorf("field = %v, want %q", err, tt.field)
			}
			if repo.count() != 0 {
				t.Error("application persisted despite validation failure")
			}
		})
	}
}

func TestApplicationService_WithdrawTwice(t *testing.T) {
	svc, _, _ := newTestApplicationService()
	ctx := context.Background()

	app, err := svc.Submit(ctx, cdcActor, validSubmission())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Withdraw(ctx, studentActor("22341A0594"), app.ID); err != nil {
		t.Fatalf("first Withdraw() error = %v", err)
	}
	if err := svc.Withdraw(ctx, studentActor("22341A0594"), app.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("second Withdraw() error = %v, want ErrResourceNotFound", err)
	}
}

func TestApplicationService_Ownership(t *testing.T) {
	svc, repo, _ := newTestApplicationService()
	ctx := context.Background()

	if _, err := svc.Submit(ctx, studentActor("22341A0001"), validSubmission()); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("submit for another student error = %v, want ErrPermissionDenied", err)
	}

	app, err := svc.Submit(ctx, cdcActor, validSubmission())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Withdraw(ctx, studentActor("22341A0001"), app.ID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("withdraw by non-owner error = %v", err)
	}

	update := &dto.UpdateApplicationRequest{Name: "X", JNTUNumber: "22341A0001", CGPA: "7", Projects: "1", ResumeLink: "r"}
	if _, err := svc.Update(ctx, studentActor("22341A0594"), app.ID, update); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("owner reassigning roll number error = %v", err)
	}

	if repo.count() != 1 {
		t.Errorf("application count = %d, want 1", repo.count())
	}

	// CDC may act on anyone's application
	if err := svc.Withdraw(ctx, cdcActor, app.ID); err != nil {
		t.Errorf("CDC withdraw error = %v", err)
	}
}

func TestApplicationService_Update(t *testing.T) {
	svc, repo, _ := newTestApplicationService()
	ctx := context.Background()

	app, err := svc.Submit(ctx, cdcActor, validSubmission())
	if err != nil {
		t.Fatal(err)
	}

	req := &dto.UpdateApplicationRequest{
		Name:       "Ravi K.",
		JNTUNumber: "22341A0594",
		CGPA:       "9.1",
		Projects:   "5",
		ResumeLink: "https://drive.example/resume-v2.pdf",
	}
	updated, err := svc.Update(ctx, studentActor("22341A0594"), app.ID, req)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ApplicantName != "Ravi K." || updated.CGPA != 9.1 || updated.ProjectsCount != 5 {
		t.Errorf("updated = %+v", updated)
	}

	stored, _ := repo.GetByID(ctx, app.ID)
	if stored.ResumeLink != "https://drive.example/resume-v2.pdf" || stored.CompanyName != "Acme Corp" {
		t.Errorf("stored = %+v", stored)
	}

	if _, err := svc.Update(ctx, cdcActor, 999, req); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("update of missing application error = %v", err)
	}

	bad := *req
	bad.CGPA = "abc"
	if _, err := svc.Update(ctx, cdcActor, app.ID, &bad); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("invalid update error = %v", err)
	}
}

func TestApplicationService_DriveReference(t *testing.T) {
	svc, _, drives := newTestApplicationService()
	ctx := context.Background()

	missing := int64(77)
	req := validSubmission()
	req.DriveID = &missing
	if _, err := svc.Submit(ctx, cdcActor, req); !errors.Is(err, apperrors.ErrDriveNotFound) {
		t.Errorf("submit to missing drive error = %v", err)
	}

	driveID, _ := drives.Create(ctx, &models.RecruitmentDrive{CompanyName: "Acme Corp", MinCGPA: 7, Branch: "Computer Science"})
	req.DriveID = &driveID
	if _, err := svc.Submit(ctx, cdcActor, req); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if _, err := svc.Submit(ctx, cdcActor, req); !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		t.Errorf("second submit to same drive error = %v, want ErrResourceAlreadyExists", err)
	}

	applicants, err := svc.ListByDrive(ctx, driveID)
	if err != nil {
		t.Fatal(err)
	}
	if len(applicants) != 1 {
		t.Errorf("applicants = %d, want 1", len(applicants))
	}
	if _, err := svc.ListByDrive(ctx, missing); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("ListByDrive(missing) error = %v", err)
	}
}
