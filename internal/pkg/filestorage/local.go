package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/technova/placement/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // Prepended to returned paths when set
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, it will be prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile saves a file to a specified subdirectory
func (ls *LocalStorage) SaveFile(_ context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique name so concurrent uploads of "logo.png" never collide
	uniqueFilename := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	rel := uniqueFilename
	if subPath != "" {
		rel = subPath + "/" + uniqueFilename
	}

	var accessiblePath string
	if ls.baseURL != "" {
		accessiblePath = ls.baseURL + "/" + rel
	} else {
		accessiblePath = filepath.ToSlash(filepath.Join("uploads", rel))
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("accessible_path", accessiblePath).Msg("File saved successfully")
	return accessiblePath, nil
}

// DeleteFile removes a stored file. Missing files are not an error.
func (ls *LocalStorage) DeleteFile(_ context.Context, locator string) error {
	if locator == "" {
		return nil
	}

	rel := locator
	switch {
	case ls.baseURL != "" && strings.HasPrefix(locator, ls.baseURL+"/"):
		rel = strings.TrimPrefix(locator, ls.baseURL+"/")
	case strings.HasPrefix(locator, "uploads/"):
		rel = strings.TrimPrefix(locator, "uploads/")
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	// Refuse anything that escapes basePath
	if !strings.HasPrefix(physicalPath, filepath.Clean(ls.basePath)+string(os.PathSeparator)) {
		return fmt.Errorf("invalid file path: %s", locator)
	}

	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}
