package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/controllers"
	"github.com/technova/placement/internal/app/models"
	"github.com/technova/placement/internal/middleware"
)

// Controllers groups every handler the router needs
type Controllers struct {
	Auth        *controllers.AuthController
	Student     *controllers.StudentController
	Company     *controllers.CompanyController
	Drive       *controllers.DriveController
	Mock        *controllers.MockController
	Application *controllers.ApplicationController
	Health      *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", c.Health.Ping)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", c.Health.Health)

	// --- Public registration and login ---
	v1.POST("/register", c.Auth.RegisterStudent)
	v1.POST("/cdc/register", c.Auth.RegisterCDC)
	v1.POST("/company/register", c.Company.RegisterCompany)
	v1.POST("/student-login", c.Auth.LoginStudent)
	v1.POST("/cdc-login", c.Auth.LoginCDC)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.POST("/auth/logout", c.Auth.Logout)

	// Readable by students and the placement cell
	anyRole := authenticated.Group("")
	anyRole.Use(authMiddleware.RoleRequired(models.RoleStudent, models.RoleCDC))
	{
		anyRole.GET("/drives", c.Drive.ListDrives)
		anyRole.GET("/drives/:id", c.Drive.GetDrive)
		anyRole.GET("/mocks", c.Mock.ListMocks)

		// Ownership is enforced per application for student sessions
		anyRole.POST("/applications", c.Application.SubmitApplication)
		anyRole.PUT("/applications/:id", c.Application.UpdateApplication)
		anyRole.DELETE("/applications/:id", c.Application.WithdrawApplication)
	}

	student := authenticated.Group("/students/me")
	student.Use(authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/applications", c.Application.ListMyApplications)
	}

	// Placement cell administration
	cdc := authenticated.Group("")
	cdc.Use(authMiddleware.RoleRequired(models.RoleCDC))
	{
		cdc.POST("/drives", c.Drive.CreateDrive)
		cdc.PUT("/drives/:id", c.Drive.UpdateDrive)
		cdc.DELETE("/drives/:id", c.Drive.DeleteDrive)
		cdc.GET("/drives/:id/eligible-students", c.Drive.EligibleStudents)
		cdc.GET("/drives/:id/eligible-students/export", c.Drive.ExportEligibleStudents)
		cdc.GET("/drives/:id/applications", c.Drive.ListApplicants)

		cdc.POST("/mocks", c.Mock.CreateMock)
		cdc.DELETE("/mocks/:id", c.Mock.DeleteMock)

		cdc.GET("/companies", c.Company.ListCompanies)
		cdc.DELETE("/companies/:id", c.Company.DeleteCompany)

		cdc.GET("/applications", c.Application.ListStudentApplications)
		cdc.GET("/students/:jntuNumber", c.Student.GetStudent)
	}
}
