package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath   string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicBaseURL string `yaml:"public_base_url" env:"SERVER_PUBLIC_BASE_URL"`
		MaxUploadMB   int    `yaml:"max_upload_mb" env:"SERVER_MAX_UPLOAD_MB"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	// Redis backs logout token revocation. An empty Addr disables it.
	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Storage struct {
		Driver string `yaml:"driver" env:"STORAGE_DRIVER"`
		S3     struct {
			Bucket    string `yaml:"bucket" env:"S3_BUCKET"`
			Region    string `yaml:"region" env:"S3_REGION"`
			Endpoint  string `yaml:"endpoint" env:"S3_ENDPOINT"`
			AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
			SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
			UseSSL    bool   `yaml:"use_ssl" env:"S3_USE_SSL"`
			PublicURL string `yaml:"public_url" env:"S3_PUBLIC_URL"`
		} `yaml:"s3"`
	} `yaml:"storage"`

	Seed struct {
		AdminName     string `yaml:"admin_name" env:"SEED_ADMIN_NAME"`
		AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env never overrides variables already set in the process environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.MaxUploadMB = 8

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "placement"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	// JWT defaults
	config.JWT.AccessTokenExpiration = "2h"
	config.JWT.Issuer = "placement.cdc"

	config.Storage.Driver = StorageDriverLocal
	config.Storage.S3.Region = "us-east-1"

	config.Seed.AdminName = "admin"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with the variables named by env tags.
// Unset or empty variables keep the file or default value.
func loadFromEnv(config *Config) error {
	return applyEnv(reflect.ValueOf(config).Elem(), "")
}

// applyEnv walks v and sets every env-tagged leaf. path is the dotted yaml
// key of v, used in error messages (e.g. "database.max_open_conns").
func applyEnv(v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field, meta := v.Field(i), t.Field(i)
		key := strings.Split(meta.Tag.Get("yaml"), ",")[0]
		if path != "" {
			key = path + "." + key
		}

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field, key); err != nil {
				return err
			}
			continue
		}

		name := meta.Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok || raw == "" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("%s (%s): invalid integer %q", name, key, raw)
			}
			field.SetInt(int64(n))
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s (%s): invalid boolean %q", name, key, raw)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("%s (%s): unsupported field type %s", name, key, field.Kind())
		}
	}
	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	switch strings.ToLower(config.Storage.Driver) {
	case StorageDriverLocal:
	case StorageDriverS3:
		if config.Storage.S3.Bucket == "" {
			return fmt.Errorf("s3 bucket is required when storage driver is s3")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.Seed.AdminPassword != "" && config.Seed.AdminName == "" {
		return fmt.Errorf("seed admin name is required when a seed password is set")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// UploadsBaseURL is the public prefix for files served from the local storage path.
func (c *Config) UploadsBaseURL() string {
	base := strings.TrimRight(c.Server.PublicBaseURL, "/")
	if base == "" {
		base = "http://localhost:" + c.Server.Port
	}
	return base + "/uploads"
}
