package upload

import (
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(filename, contentType string) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", contentType)
	return &multipart.FileHeader{Filename: filename, Header: h}
}

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name        string
		filename    string
		contentType string
		wantErr     bool
	}{
		{"jpeg", "photo.jpg", "image/jpeg", false},
		{"jpeg alt extension", "photo.jpeg", "image/jpeg", false},
		{"png", "cover.png", "image/png", false},
		{"webp", "banner.webp", "image/webp", false},
		{"uppercase extension", "PHOTO.JPG", "image/jpeg", false},
		{"video rejected", "clip.mp4", "video/mp4", true},
		{"gif rejected", "anim.gif", "image/gif", true},
		{"pdf rejected", "doc.pdf", "application/pdf", true},
		{"extension mismatch", "script.exe", "image/png", true},
		{"no extension", "photo", "image/jpeg", true},
		{"empty content type", "photo.jpg", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(fileHeader(tc.filename, tc.contentType))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImage_VideoMessage(t *testing.T) {
	err := ValidateImage(fileHeader("clip.mp4", "video/mp4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "video")
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stored.png")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))

	require.NoError(t, Remove(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// a second remove of the same path is not an error
	assert.NoError(t, Remove(path))
}
