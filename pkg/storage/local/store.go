package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/enums"
)

// ErrNotFound is returned when the named object does not exist under the store root.
var ErrNotFound = errors.New("object not found")

// Object describes a stored file as exposed to API clients.
type Object struct {
	FileName   string
	URL        string
	SizeBytes  int64
	UploadedAt time.Time
}

// Store keeps uploaded media on the local filesystem, partitioned by media
// type under <root>/images and <root>/videos.
type Store struct {
	root       string
	publicBase string
}

// Pinger reports whether the store root is usable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewStore creates the store root and its per-type subdirectories.
func NewStore(cfg config.MediaConfig) (*Store, error) {
	if cfg.Root == "" {
		return nil, errors.New("media root is required")
	}
	for _, mt := range []enums.MediaType{enums.MediaTypeImage, enums.MediaTypeVideo} {
		if err := os.MkdirAll(filepath.Join(cfg.Root, mt.Subdir()), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir media dir: %w", err)
		}
	}
	return &Store{
		root:       cfg.Root,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
	}, nil
}

// Save writes the reader's contents under the media type's subdirectory.
// The stored name is the sanitized original name prefixed with a UTC
// timestamp so repeated uploads of the same file never collide.
func (s *Store) Save(mediaType enums.MediaType, fileName string, r io.Reader) (*Object, error) {
	clean := SanitizeFileName(fileName)
	if clean == "" {
		return nil, errors.New("file name is empty after sanitization")
	}

	stored := fmt.Sprintf("%s_%s", time.Now().UTC().Format("20060102150405"), clean)
	full := filepath.Join(s.root, mediaType.Subdir(), stored)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", stored, err)
	}
	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return nil, fmt.Errorf("write %q: %w", stored, err)
	}

	return &Object{
		FileName:   stored,
		URL:        s.publicURL(mediaType, stored),
		SizeBytes:  written,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// List returns the stored objects of one media type, newest first.
func (s *Store) List(mediaType enums.MediaType) ([]Object, error) {
	dir := filepath.Join(s.root, mediaType.Subdir())
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}

	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Object{
			FileName:   e.Name(),
			URL:        s.publicURL(mediaType, e.Name()),
			SizeBytes:  info.Size(),
			UploadedAt: info.ModTime().UTC(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileName > out[j].FileName })
	return out, nil
}

// Delete removes a stored object. The name is reduced to its base component
// so callers cannot reach outside the store root.
func (s *Store) Delete(mediaType enums.MediaType, fileName string) error {
	clean := path.Base(strings.TrimSpace(fileName))
	if clean == "" || clean == "." || clean == ".." {
		return ErrNotFound
	}
	full := filepath.Join(s.root, mediaType.Subdir(), clean)
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("remove %q: %w", clean, err)
	}
	return nil
}

// Ping verifies the store root is writable.
func (s *Store) Ping(_ context.Context) error {
	probe := filepath.Join(s.root, fmt.Sprintf(".probe-%d", time.Now().UnixNano()))
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return fmt.Errorf("media root not writable: %w", err)
	}
	return os.Remove(probe)
}

func (s *Store) publicURL(mediaType enums.MediaType, name string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBase, mediaType.Subdir(), name)
}

// SanitizeFileName strips directory components, control characters, and
// whitespace from an uploaded file name.
func SanitizeFileName(name string) string {
	clean := path.Base(strings.TrimSpace(strings.ReplaceAll(name, "\\", "/")))
	if clean == "." || clean == ".." {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
