package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Store persists uploaded logo images under a single directory. It is
// constructed once at startup and shared by every handler that needs
// file access.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string { return s.root }

// Save writes the upload under a generated unique name, preserving the
// original extension, and returns that name. A missing filename or a
// disallowed extension is a hard validation error. Any disk failure is
// downgraded to ("", nil) so the caller treats the logo as omitted.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Filename == "" {
		return "", fmt.Errorf("no filename provided")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("file type %q not allowed. Allowed types: %s",
			ext, strings.Join(allowedList(), ", "))
	}

	name := uuid.New().String() + ext

	src, err := fh.Open()
	if err != nil {
		log.WithError(err).Error("failed to open uploaded logo")
		return "", nil
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		log.WithError(err).Error("failed to create logo file")
		return "", nil
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.WithError(err).Error("failed to write logo file")
		return "", nil
	}
	return name, nil
}

// Delete removes a stored file by name and reports whether a file was
// actually removed. I/O errors are never propagated.
func (s *Store) Delete(name string) bool {
	path := filepath.Join(s.root, name)
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return os.Remove(path) == nil
}

func allowedList() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
