package local

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/enums"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(config.MediaConfig{Root: t.TempDir(), PublicBase: "/uploads"})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestSaveListDelete(t *testing.T) {
	store := newTestStore(t)

	obj, err := store.Save(enums.MediaTypeImage, "My Photo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(obj.FileName, "_My-Photo.png") {
		t.Fatalf("unexpected stored name: %s", obj.FileName)
	}
	if !strings.HasPrefix(obj.URL, "/uploads/images/") {
		t.Fatalf("unexpected url: %s", obj.URL)
	}
	if obj.SizeBytes != int64(len("png-bytes")) {
		t.Fatalf("unexpected size: %d", obj.SizeBytes)
	}

	images, err := store.List(enums.MediaTypeImage)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(images) != 1 || images[0].FileName != obj.FileName {
		t.Fatalf("unexpected listing: %+v", images)
	}

	videos, err := store.List(enums.MediaTypeVideo)
	if err != nil {
		t.Fatalf("list videos: %v", err)
	}
	if len(videos) != 0 {
		t.Fatalf("expected empty video listing, got %+v", videos)
	}

	if err := store.Delete(enums.MediaTypeImage, obj.FileName); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(enums.MediaTypeImage, obj.FileName); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_StripsPathComponents(t *testing.T) {
	store := newTestStore(t)

	if err := store.Delete(enums.MediaTypeImage, "../../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for traversal name, got %v", err)
	}
	if err := store.Delete(enums.MediaTypeImage, ".."); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for dot-dot, got %v", err)
	}
}

func TestPing(t *testing.T) {
	store := newTestStore(t)
	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"photo.png":       "photo.png",
		"  my file .png ": "my-file-.png",
		"../../evil.sh":   "evil.sh",
		"dir\\file.mp4":   "file.mp4",
		"..":              "",
		"":                "",
	}
	for in, want := range cases {
		if got := SanitizeFileName(in); got != want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
