package media

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/enums"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/storage/local"
)

// pngHeader is a minimal valid PNG signature so content sniffing reports
// image/png.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func newTestService(t *testing.T) Service {
	t.Helper()

	cfg := config.MediaConfig{Root: t.TempDir(), PublicBase: "/uploads", MaxUploadMB: 1}
	store, err := local.NewStore(cfg)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc, err := NewService(store, cfg)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestUploadListDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	uploaded, err := svc.Upload(ctx, UploadInput{
		FileName:  "thumb.png",
		SizeBytes: int64(len(body)),
		Body:      bytes.NewReader(body),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploaded.Type != "image" || !strings.HasSuffix(uploaded.FileName, "_thumb.png") {
		t.Fatalf("unexpected upload result: %+v", uploaded)
	}
	if uploaded.SizeBytes != int64(len(body)) {
		t.Fatalf("size mismatch: %d != %d", uploaded.SizeBytes, len(body))
	}

	library, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(library.Images) != 1 || library.Images[0].FileName != uploaded.FileName {
		t.Fatalf("unexpected image listing: %+v", library.Images)
	}
	if len(library.Videos) != 0 {
		t.Fatalf("unexpected video listing: %+v", library.Videos)
	}

	if err := svc.Delete(ctx, enums.MediaTypeImage, uploaded.FileName); err != nil {
		t.Fatalf("delete: %v", err)
	}
	err = svc.Delete(ctx, enums.MediaTypeImage, uploaded.FileName)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestUpload_RejectsWrongContentType(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		FileName:  "notes.txt",
		SizeBytes: 10,
		Body:      strings.NewReader("plain text"),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnsupportedMedia {
		t.Fatalf("expected unsupported-media error, got %v", err)
	}
}

func TestUpload_RejectsOversizedDeclaredSize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Upload(context.Background(), UploadInput{
		FileName:  "huge.png",
		SizeBytes: 2 * 1024 * 1024,
		Body:      bytes.NewReader(pngHeader),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodePayloadTooLarge {
		t.Fatalf("expected payload-too-large error, got %v", err)
	}
}

func TestUpload_AcceptsVideoByExtension(t *testing.T) {
	svc := newTestService(t)

	// An mp4 body that sniffing cannot identify still routes to videos on
	// extension.
	uploaded, err := svc.Upload(context.Background(), UploadInput{
		FileName:  "reel.mp4",
		SizeBytes: 32,
		Body:      bytes.NewReader(bytes.Repeat([]byte{0x01}, 32)),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploaded.Type != "video" || !strings.HasPrefix(uploaded.URL, "/uploads/videos/") {
		t.Fatalf("unexpected upload result: %+v", uploaded)
	}
}
