package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/technova/placement/internal/app/models"
	appRepos "github.com/technova/placement/internal/app/repositories"
	"github.com/technova/placement/internal/pkg/apperrors"
	"github.com/technova/placement/internal/pkg/auth"
)

// DefaultAdmin describes the placement cell account created on startup
type DefaultAdmin struct {
	Name     string
	Password string
}

// CreateDefaultAdmin creates the default CDC admin if no admin with that name
// exists. An empty password skips seeding.
func CreateDefaultAdmin(ctx context.Context, adminRepo appRepos.IAdminRepository, hasher auth.PasswordHasher, admin DefaultAdmin, lgr zerolog.Logger) error {
	if admin.Name == "" || admin.Password == "" {
		lgr.Debug().Msg("No default admin configured, skipping seed")
		return nil
	}

	lgr.Info().Str("admin_name", admin.Name).Msg("Checking/Creating default CDC admin...")

	_, err := adminRepo.GetByName(ctx, admin.Name)
	if err == nil {
		lgr.Info().Str("admin_name", admin.Name).Msg("Default CDC admin already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	digest, err := hasher.Hash(admin.Password)
	if err != nil {
		return err
	}

	_, err = adminRepo.Create(ctx, &appModels.Admin{AdminName: admin.Name, Password: digest})
	if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		// another instance seeded it first
		return nil
	}
	if err != nil {
		return err
	}

	lgr.Info().Str("admin_name", admin.Name).Msg("Default CDC admin created")
	return nil
}
