package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomly/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir, "http://localhost:8080/", testLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	url, err := store.Save("room.jpg", strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(url, "http://localhost:8080/images/") {
		t.Errorf("unexpected URL shape: %s", url)
	}
	if !strings.HasSuffix(url, "-room.jpg") {
		t.Errorf("expected timestamp-prefixed original name, got %s", url)
	}

	name := strings.TrimPrefix(url, "http://localhost:8080/images/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestSave_RepeatedUploadsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalImageStore(dir, "http://localhost:8080", testLogger())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	// Back-to-back saves land in the same millisecond; each upload must
	// still end up in its own file with its own bytes.
	first, err := store.Save("room.jpg", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := store.Save("room.jpg", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	if first == second {
		t.Fatalf("two uploads of the same filename produced the same URL: %s", first)
	}

	firstData, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(first, "http://localhost:8080/images/")))
	if err != nil {
		t.Fatalf("first file not readable: %v", err)
	}
	if string(firstData) != "first" {
		t.Errorf("first upload's bytes were overwritten: %q", firstData)
	}

	secondData, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(second, "http://localhost:8080/images/")))
	if err != nil {
		t.Fatalf("second file not readable: %v", err)
	}
	if string(secondData) != "second" {
		t.Errorf("second upload stored wrong bytes: %q", secondData)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "room.jpg", "room.jpg"},
		{"path traversal stripped", "../../etc/passwd", "passwd"},
		{"spaces replaced", "my room photo.png", "my_room_photo.png"},
		{"unicode replaced and trimmed", "фото.png", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeFilename(tt.in); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename_EmptyGetsGenerated(t *testing.T) {
	got := sanitizeFilename("...")
	if got == "" {
		t.Error("expected a generated name for an unusable filename")
	}
}
