package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

var imageMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

// ValidateImage enforces the JPEG/PNG/WebP allow-list on both the declared
// content type and the file extension. Video uploads are rejected outright.
func ValidateImage(header *multipart.FileHeader) error {
	contentType := header.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "video/") {
		return fmt.Errorf("video files are not allowed")
	}
	if _, ok := imageMimeTypes[contentType]; !ok {
		return fmt.Errorf("unsupported content type %q: only JPEG, PNG and WebP images are allowed", contentType)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if _, ok := imageExtensions[ext]; !ok {
		return fmt.Errorf("unsupported file extension %q", ext)
	}

	return nil
}

// SaveImage validates and writes an uploaded image under dir with a random
// filename, returning the stored relative path.
func SaveImage(header *multipart.FileHeader, dir string) (string, error) {
	if err := ValidateImage(header); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

// Remove deletes a stored file, ignoring already-missing files.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
