package filestorage

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// FileStorage stores uploaded files and returns a locator for them.
type FileStorage interface {
	// SaveFile stores the upload under subPath and returns its accessible path or URL.
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a file previously returned by SaveFile.
	DeleteFile(ctx context.Context, locator string) error
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

// IsImageFile reports whether filename has a known image extension.
func IsImageFile(filename string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(filename))]
}
