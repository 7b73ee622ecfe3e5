package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/orbya/portfolio-backend/pkg/config"
	"github.com/orbya/portfolio-backend/pkg/enums"
	pkgerrors "github.com/orbya/portfolio-backend/pkg/errors"
	"github.com/orbya/portfolio-backend/pkg/storage/local"
)

const sniffLen = 512

type objectStore interface {
	Save(mediaType enums.MediaType, fileName string, r io.Reader) (*local.Object, error)
	List(mediaType enums.MediaType) ([]local.Object, error)
	Delete(mediaType enums.MediaType, fileName string) error
}

// FileDTO is the wire representation of a stored media file.
type FileDTO struct {
	FileName   string    `json:"fileName"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// LibraryDTO partitions the stored files by media type.
type LibraryDTO struct {
	Images []FileDTO `json:"images"`
	Videos []FileDTO `json:"videos"`
}

// UploadInput carries one incoming file.
type UploadInput struct {
	FileName  string
	SizeBytes int64
	Body      io.Reader
}

// Service stores uploaded images and videos on disk and serves their
// metadata back to the admin panel. The media type is inferred from the
// file content, not declared by the caller.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*FileDTO, error)
	ListAll(ctx context.Context) (*LibraryDTO, error)
	Delete(ctx context.Context, mediaType enums.MediaType, fileName string) error
}

type service struct {
	store    objectStore
	maxBytes int64
}

// NewService builds a media service over the provided object store.
func NewService(store objectStore, cfg config.MediaConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("object store required")
	}
	if cfg.MaxUploadBytes() <= 0 {
		return nil, fmt.Errorf("upload ceiling must be positive")
	}
	return &service{store: store, maxBytes: cfg.MaxUploadBytes()}, nil
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*FileDTO, error) {
	if strings.TrimSpace(input.FileName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	if input.SizeBytes > s.maxBytes {
		return nil, pkgerrors.New(pkgerrors.CodePayloadTooLarge,
			fmt.Sprintf("file exceeds the %d MB upload ceiling", s.maxBytes/(1024*1024)))
	}
	if input.Body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file body is required")
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(input.Body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read upload")
	}
	head = head[:n]

	detected := http.DetectContentType(head)
	mediaType, ok := detectMediaType(detected, input.FileName)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnsupportedMedia,
			fmt.Sprintf("upload rejected: detected content type %s", detected))
	}

	// Re-join the sniffed head with the rest of the stream, still bounded by
	// the ceiling in case the declared size lied.
	body := io.MultiReader(strings.NewReader(string(head)), io.LimitReader(input.Body, s.maxBytes-int64(len(head))+1))

	obj, err := s.store.Save(mediaType, input.FileName, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store upload")
	}
	if obj.SizeBytes > s.maxBytes {
		_ = s.store.Delete(mediaType, obj.FileName)
		return nil, pkgerrors.New(pkgerrors.CodePayloadTooLarge,
			fmt.Sprintf("file exceeds the %d MB upload ceiling", s.maxBytes/(1024*1024)))
	}
	return toDTO(mediaType, obj), nil
}

func (s *service) ListAll(_ context.Context) (*LibraryDTO, error) {
	images, err := s.list(enums.MediaTypeImage)
	if err != nil {
		return nil, err
	}
	videos, err := s.list(enums.MediaTypeVideo)
	if err != nil {
		return nil, err
	}
	return &LibraryDTO{Images: images, Videos: videos}, nil
}

func (s *service) list(mediaType enums.MediaType) ([]FileDTO, error) {
	objects, err := s.store.List(mediaType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list media")
	}
	out := make([]FileDTO, 0, len(objects))
	for i := range objects {
		out = append(out, *toDTO(mediaType, &objects[i]))
	}
	return out, nil
}

func (s *service) Delete(_ context.Context, mediaType enums.MediaType, fileName string) error {
	if !mediaType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid media type")
	}
	if err := s.store.Delete(mediaType, fileName); err != nil {
		if err == local.ErrNotFound {
			return pkgerrors.New(pkgerrors.CodeNotFound, "media file not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete media")
	}
	return nil
}

func toDTO(mediaType enums.MediaType, obj *local.Object) *FileDTO {
	return &FileDTO{
		FileName:   obj.FileName,
		URL:        obj.URL,
		Type:       string(mediaType),
		SizeBytes:  obj.SizeBytes,
		UploadedAt: obj.UploadedAt,
	}
}

// detectMediaType maps a sniffed content type onto the two stored media
// kinds. http.DetectContentType cannot identify every video container, so
// common video extensions are trusted when sniffing only reports
// application/octet-stream.
func detectMediaType(detected, fileName string) (enums.MediaType, bool) {
	if strings.HasPrefix(detected, "image/") {
		return enums.MediaTypeImage, true
	}
	if strings.HasPrefix(detected, "video/") {
		return enums.MediaTypeVideo, true
	}
	if detected == "application/octet-stream" {
		lower := strings.ToLower(fileName)
		for _, ext := range []string{".mp4", ".webm", ".mov", ".m4v"} {
			if strings.HasSuffix(lower, ext) {
				return enums.MediaTypeVideo, true
			}
		}
	}
	return "", false
}
