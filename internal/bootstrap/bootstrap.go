package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/technova/placement/internal/app/controllers"
	appMigrations "github.com/technova/placement/internal/app/migrations"
	appRepos "github.com/technova/placement/internal/app/repositories"
	appRoutes "github.com/technova/placement/internal/app/routes"
	appServices "github.com/technova/placement/internal/app/services"
	"github.com/technova/placement/internal/config"
	"github.com/technova/placement/internal/db"
	appMiddleware "github.com/technova/placement/internal/middleware"
	pkgAuth "github.com/technova/placement/internal/pkg/auth"
	"github.com/technova/placement/internal/pkg/filestorage"
	"github.com/technova/placement/internal/pkg/helpers"
	"github.com/technova/placement/internal/pkg/logger"
	"github.com/technova/placement/internal/pkg/tokenstore"
	"github.com/technova/placement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	CompanyService     appServices.CompanyService
	DriveService       appServices.DriveService
	MockService        appServices.MockService
	EligibilityService appServices.EligibilityService
	ApplicationService appServices.ApplicationService
	Controllers        appRoutes.Controllers
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Hasher             pkgAuth.PasswordHasher
	Revocations        tokenstore.RevocationStore
	RedisClient        *redis.Client
	Logger             zerolog.Logger
	FileStorage        filestorage.FileStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// setupFileStorage selects the upload backend configured for mock logos
func setupFileStorage(cfg *config.Config) (filestorage.FileStorage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case config.StorageDriverS3:
		s3 := cfg.Storage.S3
		return filestorage.NewS3Storage(filestorage.S3Config{
			Bucket:    s3.Bucket,
			Region:    s3.Region,
			Endpoint:  s3.Endpoint,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			UseSSL:    s3.UseSSL,
			PublicURL: s3.PublicURL,
		})
	default:
		return filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.UploadsBaseURL())
	}
}

// setupRevocations connects the logout revocation store. Without a Redis
// address logout is accepted but tokens stay valid until they expire.
func setupRevocations(cfg *config.Config, lgr zerolog.Logger) (tokenstore.RevocationStore, *redis.Client, error) {
	if cfg.Redis.Addr == "" {
		lgr.Warn().Msg("Redis not configured, token revocation disabled")
		return tokenstore.NopStore{}, nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := tokenstore.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	return tokenstore.NewRedisStore(client), client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = setupFileStorage(cfg)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Revocations, deps.RedisClient, err = setupRevocations(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize token revocation store")
		return nil, fmt.Errorf("failed to initialize token revocation store: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 2*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.Hasher = pkgAuth.NewBcryptHasher(pkgAuth.BcryptCost)

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.AdminRepository,
		deps.Hasher,
		deps.JWTService,
		deps.Revocations,
	)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, deps.Hasher)
	deps.DriveService = appServices.NewDriveService(deps.Repos.DriveRepository)
	deps.MockService = appServices.NewMockService(deps.Repos.MockRepository, deps.FileStorage)
	deps.EligibilityService = appServices.NewEligibilityService(deps.Repos.DriveRepository, deps.Repos.StudentRepository, database)
	deps.ApplicationService = appServices.NewApplicationService(deps.Repos.ApplicationRepository, deps.Repos.DriveRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Revocations)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(deps.AuthService, deps.Logger),
		Student:     appControllers.NewStudentController(deps.AuthService),
		Company:     appControllers.NewCompanyController(deps.CompanyService),
		Drive:       appControllers.NewDriveController(deps.DriveService, deps.EligibilityService, deps.ApplicationService),
		Mock:        appControllers.NewMockController(deps.MockService, cfg.Server.MaxUploadMB),
		Application: appControllers.NewApplicationController(deps.ApplicationService),
		Health:      appControllers.NewHealthController(database.Pool),
	}

	// Create default data (after migrations)
	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defaultAdmin := seed.DefaultAdmin{Name: cfg.Seed.AdminName, Password: cfg.Seed.AdminPassword}
	if err := seed.CreateDefaultAdmin(seedCtx, deps.Repos.AdminRepository, deps.Hasher, defaultAdmin, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())
	router.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router, nil
}
