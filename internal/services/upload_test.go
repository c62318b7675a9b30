package services

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

func TestValidateImage(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"jpg ok", "photo.jpg", 1024, false},
		{"jpeg ok", "photo.JPEG", 1024, false},
		{"png ok", "chart.png", 5 * 1024 * 1024, false},
		{"gif rejected", "anim.gif", 1024, true},
		{"no extension", "photo", 1024, true},
		{"too large", "big.jpg", 5*1024*1024 + 1, true},
	}
	for _, tc := range cases {
		header := &multipart.FileHeader{Filename: tc.filename, Size: tc.size}
		err := ValidateImage(header)
		if tc.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestRemoveImage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	path := filepath.Join(dir, "posts", "orphan.jpg")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	RemoveImage("/uploads/posts/orphan.jpg")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file removed, stat err = %v", err)
	}
}

func TestRemoveImageIgnoresForeignPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	path := filepath.Join(dir, "posts", "keep.jpg")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Paths that did not come from StoreImage are left alone.
	RemoveImage("posts/keep.jpg")
	RemoveImage("")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file should be untouched, stat err = %v", err)
	}
}
