package enums

import "fmt"

// AspectRatio constrains how a project's video embed is framed.
type AspectRatio string

const (
	AspectRatioWide      AspectRatio = "16:9"
	AspectRatioVertical  AspectRatio = "9:16"
	AspectRatioSquare    AspectRatio = "1:1"
	AspectRatioClassic   AspectRatio = "4:3"
	AspectRatioUltrawide AspectRatio = "21:9"
)

// AspectRatioDefault is applied when a project omits the field.
const AspectRatioDefault = AspectRatioWide

var validAspectRatios = []AspectRatio{
	AspectRatioWide,
	AspectRatioVertical,
	AspectRatioSquare,
	AspectRatioClassic,
	AspectRatioUltrawide,
}

// String returns the literal ratio.
func (a AspectRatio) String() string {
	return string(a)
}

// IsValid reports whether the ratio is part of the supported set.
func (a AspectRatio) IsValid() bool {
	for _, candidate := range validAspectRatios {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAspectRatio converts raw input into an AspectRatio.
func ParseAspectRatio(value string) (AspectRatio, error) {
	if value == "" {
		return AspectRatioDefault, nil
	}
	for _, candidate := range validAspectRatios {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid aspect ratio %q", value)
}
