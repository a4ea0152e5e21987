package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"roomly/pkg/logger"

	"github.com/google/uuid"
)

// ImageStore persists uploaded room images and hands back the URL clients
// can fetch them from.
type ImageStore interface {
	Save(originalName string, src io.Reader) (string, error)
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// LocalImageStore writes images to a directory served read-only under
// /images. Stored names are prefixed with the upload timestamp so repeated
// uploads of the same file never collide.
type LocalImageStore struct {
	dir     string
	baseURL string
	log     *logger.Logger
}

func NewLocalImageStore(dir, baseURL string, log *logger.Logger) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", dir, err)
	}

	return &LocalImageStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}, nil
}

func (s *LocalImageStore) Save(originalName string, src io.Reader) (string, error) {
	base := sanitizeFilename(originalName)
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)

	path := filepath.Join(s.dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		// Same name uploaded within the same millisecond; disambiguate
		// rather than truncate the earlier file.
		name = fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), base)
		path = filepath.Join(s.dir, name)
		dst, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.log.Info("Image stored", "file", name, "bytes", written)
	return s.baseURL + "/images/" + name, nil
}

// Dir returns the directory images are written to, for static serving.
func (s *LocalImageStore) Dir() string {
	return s.dir
}

// sanitizeFilename strips directory components and anything outside a safe
// character set. Uploads with no usable name get a generated one.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return uuid.NewString()
	}
	return name
}
