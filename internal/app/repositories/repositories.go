package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     *StudentRepository
	AdminRepository       *AdminRepository
	CompanyRepository     *CompanyRepository
	DriveRepository       *DriveRepository
	MockRepository        *MockRepository
	ApplicationRepository *ApplicationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		AdminRepository:       NewAdminRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
		DriveRepository:       NewDriveRepository(db),
		MockRepository:        NewMockRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}

// Compile-time interface checks
var (
	_ IStudentRepository     = (*StudentRepository)(nil)
	_ IAdminRepository       = (*AdminRepository)(nil)
	_ ICompanyRepository     = (*CompanyRepository)(nil)
	_ IDriveRepository       = (*DriveRepository)(nil)
	_ IMockRepository        = (*MockRepository)(nil)
	_ IApplicationRepository = (*ApplicationRepository)(nil)
)
