package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/app/models/dto"
	"github.com/technova/placement/internal/middleware"
	"github.com/technova/placement/internal/pkg/export"
)

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return resp.Error
}

func TestApplicationController_Submit(t *testing.T) {
	svc := &fakeApplicationService{}
	ctrl := NewApplicationController(svc)
	r := gin.New()
	r.POST("/applications", withSession("22341A0594", models.RoleStudent), ctrl.SubmitApplication)

	body := `{"company_name":"Acme Corp","name":"Ravi","jntu_number":"22341A0594","cgpa":8.9,"projects":"3","resume_link":"r"}`
	w := doJSON(r, http.MethodPost, "/applications", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.lastActor.Subject != "22341A0594" || svc.lastActor.Role != models.RoleStudent {
		t.Errorf("actor = %+v", svc.lastActor)
	}
	if svc.lastSubmit.CGPA != "8.9" || svc.lastSubmit.Projects != "3" {
		t.Errorf("numeric fields = %q / %q", svc.lastSubmit.CGPA, svc.lastSubmit.Projects)
	}
	if !strings.Contains(w.Body.String(), `"status":"Under Review"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestApplicationController_Errors(t *testing.T) {
	svc := &fakeApplicationService{}
	ctrl := NewApplicationController(svc)
	r := gin.New()
	r.DELETE("/applications/:id", withSession("22341A0594", models.RoleStudent), ctrl.WithdrawApplication)
	r.DELETE("/anonymous/:id", ctrl.WithdrawApplication)
	r.GET("/applications", withSession("officer", models.RoleCDC), ctrl.ListStudentApplications)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantField  string
	}{
		{"non numeric id", http.MethodDelete, "/applications/abc", http.StatusBadRequest, "id"},
		{"zero id", http.MethodDelete, "/applications/0", http.StatusBadRequest, "id"},
		{"no session", http.MethodDelete, "/anonymous/1", http.StatusUnauthorized, ""},
		{"missing roll number query", http.MethodGet, "/applications", http.StatusBadRequest, "jntuNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, tt.method, tt.path, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantField != "" {
				if detail := decodeError(t, w); detail.Field != tt.wantField {
					t.Errorf("field = %q, want %q", detail.Field, tt.wantField)
				}
			}
		})
	}
}

func TestApplicationController_ListMineUsesSession(t *testing.T) {
	svc := &fakeApplicationService{}
	ctrl := NewApplicationController(svc)
	r := gin.New()
	r.GET("/students/me/applications", withSession("22341A0594", models.RoleStudent), ctrl.ListMyApplications)

	w := doJSON(r, http.MethodGet, "/students/me/applications?jntuNumber=someone-else", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if svc.listedFor != "22341A0594" {
		t.Errorf("listed for %q, want session subject", svc.listedFor)
	}
}

func TestMockController_CreateMultipart(t *testing.T) {
	svc := &fakeMockService{}
	ctrl := NewMockController(svc, 1)
	r := gin.New()
	r.POST("/mocks", ctrl.CreateMock)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fields := map[string]string{
		"companyName":  "Acme Corp",
		"mockLink":     "https://meet.example/x",
		"mockDate":     "2025-07-15",
		"duration":     "45",
		"durationUnit": "minutes",
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	part, err := mw.CreateFormFile("companyLogo", "logo.png")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write([]byte("\x89PNG fake"))
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/mocks", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if svc.lastCreate.CompanyName != "Acme Corp" || svc.lastCreate.Duration != "45" {
		t.Errorf("request = %+v", svc.lastCreate)
	}
	if svc.lastCreate.CompanyLogo == nil || svc.lastCreate.CompanyLogo.Filename != "logo.png" {
		t.Errorf("logo = %+v", svc.lastCreate.CompanyLogo)
	}
}

func TestMockController_DeleteNotFound(t *testing.T) {
	ctrl := NewMockController(&fakeMockService{}, 1)
	r := gin.New()
	r.DELETE("/mocks/:id", ctrl.DeleteMock)

	if w := doJSON(r, http.MethodDelete, "/mocks/9", ""); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestDriveController_EligibleAndExport(t *testing.T) {
	ctrl := NewDriveController(nil, fakeEligibilityService{}, &fakeApplicationService{})
	r := gin.New()
	r.GET("/drives/:id/eligible-students", ctrl.EligibleStudents)
	r.GET("/drives/:id/eligible-students/export", ctrl.ExportEligibleStudents)

	w := doJSON(r, http.MethodGet, "/drives/1/eligible-students", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret-digest") {
		t.Error("password digest leaked in response")
	}

	if w := doJSON(r, http.MethodGet, "/drives/2/eligible-students", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown drive status = %d, want 404", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/drives/1/eligible-students/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != export.ContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "eligible-1-acme-corp.xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestAuthController(t *testing.T) {
	svc := &fakeAuthService{}
	ctrl := NewAuthController(svc, zerolog.Nop())
	if err := middleware.RegisterValidators(); err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.POST("/register", ctrl.RegisterStudent)
	r.POST("/student-login", ctrl.LoginStudent)
	r.POST("/auth/logout", withSession("22341A0594", models.RoleStudent), ctrl.Logout)

	w := doJSON(r, http.MethodPost, "/register", `{"jntuNumber":"22341A0594","email":"a@b.edu","password":"secret1","cgpa":"8.1","branch":"Computer Science"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "digest") {
		t.Error("password digest leaked in response")
	}

	w = doJSON(r, http.MethodPost, "/register", `{"jntuNumber":"22341A0594","email":"a@b.edu","password":"secret1","cgpa":"8.1","branch":"Civil"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad branch status = %d", w.Code)
	} else if detail := decodeError(t, w); detail.Field != "branch" {
		t.Errorf("field = %q, want branch", detail.Field)
	}

	w = doJSON(r, http.MethodPost, "/student-login", `{"jntu_number":"22341A0594","password":"nope"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("login status = %d, want 401", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/auth/logout", "")
	if w.Code != http.StatusOK || svc.loggedOut != "jti-22341A0594" {
		t.Errorf("logout status = %d, revoked %q", w.Code, svc.loggedOut)
	}
}

func TestHealthController(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
	}{
		{"no database", nil, http.StatusOK},
		{"database up", fakePinger{}, http.StatusOK},
		{"database down", fakePinger{err: errors.New("refused")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(tt.pinger)
			r := gin.New()
			r.GET("/health", ctrl.Health)
			if w := doJSON(r, http.MethodGet, "/health", ""); w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
