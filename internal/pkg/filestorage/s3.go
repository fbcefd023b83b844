package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/technova/placement/internal/pkg/logger"
)

// S3Config holds the bucket connection settings.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	PublicURL string // base URL objects are served from; defaults to the endpoint/bucket
}

// S3Storage stores uploads in an S3-compatible bucket.
type S3Storage struct {
	client    *s3.S3
	bucket    string
	publicURL string
}

// NewS3Storage creates an S3 client with path-style addressing so MinIO works too.
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		DisableSSL:       aws.Bool(!cfg.UseSSL),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		host := cfg.Endpoint
		if host == "" {
			host = fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
		}
		host = strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://")
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, host, cfg.Bucket)
	}

	return &S3Storage{
		client:    s3.New(sess),
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// SaveFile uploads the file under subPath and returns its public URL.
func (s *S3Storage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	key := uuid.New().String() + strings.ToLower(path.Ext(fileHeader.Filename))
	if subPath != "" {
		key = path.Join(subPath, key)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		logger.Error().Err(err).Str("bucket", s.bucket).Str("key", key).Msg("Failed to upload file to s3")
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logger.Info().Str("bucket", s.bucket).Str("key", key).Msg("File uploaded to s3")
	return s.publicURL + "/" + key, nil
}

// DeleteFile removes the object behind a URL returned by SaveFile.
func (s *S3Storage) DeleteFile(ctx context.Context, locator string) error {
	key := strings.TrimPrefix(locator, s.publicURL+"/")
	if key == "" || key == locator {
		return fmt.Errorf("locator %q is not in bucket %s", locator, s.bucket)
	}

	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
