package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxImageBytes is the attachment size ceiling for photo posts.
const maxImageBytes = 5 * 1024 * 1024

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateImage checks a photo attachment against the accepted formats and
// the size ceiling.
func ValidateImage(header *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExt[ext] {
		return fmt.Errorf("only jpg, jpeg and png images are allowed")
	}
	if header.Size > maxImageBytes {
		return fmt.Errorf("image must be 5MB or smaller")
	}
	return nil
}

// StoreImage writes the upload under the configured upload directory and
// returns the public path it will be served from.
func StoreImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	destDir := filepath.Join(dir, "posts")
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(destDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/posts/" + name, nil
}

// RemoveImage deletes a stored upload given the public path StoreImage
// returned, for when the post the image belongs to never gets created.
func RemoveImage(publicPath string) {
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	if rel == publicPath || rel == "" {
		return
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	if err := os.Remove(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
		log.Printf("failed to remove orphaned upload %s: %v", publicPath, err)
	}
}
