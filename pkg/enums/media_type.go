package enums

import "fmt"

// MediaType partitions uploaded files on disk (uploads/images, uploads/videos).
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

var validMediaTypes = []MediaType{
	MediaTypeImage,
	MediaTypeVideo,
}

// String returns the literal string for the type.
func (m MediaType) String() string {
	return string(m)
}

// IsValid reports whether the type is known.
func (m MediaType) IsValid() bool {
	for _, candidate := range validMediaTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// Subdir returns the storage subdirectory for the type.
func (m MediaType) Subdir() string {
	switch m {
	case MediaTypeImage:
		return "images"
	case MediaTypeVideo:
		return "videos"
	default:
		return ""
	}
}

// ParseMediaType converts raw input into a MediaType. It accepts both the
// type name ("image") and the directory name ("images") since delete URLs
// historically carried either.
func ParseMediaType(value string) (MediaType, error) {
	switch value {
	case "image", "images":
		return MediaTypeImage, nil
	case "video", "videos":
		return MediaTypeVideo, nil
	}
	return "", fmt.Errorf("invalid media type %q", value)
}
