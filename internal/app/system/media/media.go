// Package media stores event photos in blob storage with unique,
// sanitized paths.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

// ErrUnsupportedType is returned when an upload does not have an
// allowed image extension.
var ErrUnsupportedType = errors.New("media: unsupported file type")

// allowedExtensions maps lowercase image extensions to content types.
var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// UploadInfo contains metadata about a stored photo.
type UploadInfo struct {
	Path        string
	FileName    string
	Size        int64
	ContentType string
}

// UploadEventPhoto validates the extension and stores an event photo
// with a unique path of the form events/YYYY/MM/uuid-filename.
func UploadEventPhoto(ctx context.Context, store storage.Store, filename string, reader io.Reader, size int64) (UploadInfo, error) {
	return upload(ctx, store, "events", filename, reader, size)
}

// UploadUserPhoto stores a profile photo under users/YYYY/MM.
func UploadUserPhoto(ctx context.Context, store storage.Store, filename string, reader io.Reader, size int64) (UploadInfo, error) {
	return upload(ctx, store, "users", filename, reader, size)
}

func upload(ctx context.Context, store storage.Store, prefix, filename string, reader io.Reader, size int64) (UploadInfo, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return UploadInfo{}, ErrUnsupportedType
	}

	now := time.Now().UTC()
	dateDir := fmt.Sprintf("%s/%04d/%02d", prefix, now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	path := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := store.Put(ctx, path, reader, opts); err != nil {
		return UploadInfo{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	return UploadInfo{
		Path:        path,
		FileName:    filename,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// sanitizeFilename removes or replaces characters that could be problematic in filenames.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		// Truncate but preserve extension if present
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}
