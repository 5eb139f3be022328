package fileclass

import "strings"

// Category is the broad kind of an uploaded file.
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryAudio Category = "audio"
	CategoryFile  Category = "file"
)

// Icon names the pictogram shown for a file of a given MIME type.
type Icon string

const (
	IconImage Icon = "image"
	IconVideo Icon = "video"
	IconMusic Icon = "music"
	IconFile  Icon = "file"
)

// IsImage reports whether mimeType is an accepted image type.
func (r *Registry) IsImage(mimeType string) bool {
	return inSet(r.imageTypes, mimeType)
}

// IsVideo reports whether mimeType is an accepted video type.
func (r *Registry) IsVideo(mimeType string) bool {
	return inSet(r.videoTypes, mimeType)
}

// IsAudio reports whether mimeType is an accepted audio type.
func (r *Registry) IsAudio(mimeType string) bool {
	return inSet(r.audioTypes, mimeType)
}

func inSet(set map[string]struct{}, mimeType string) bool {
	if mimeType == "" {
		return false
	}
	_, ok := set[strings.ToLower(mimeType)]
	return ok
}

// Classify maps a MIME type to its category.
// First matching predicate wins: image, then video, then audio.
func (r *Registry) Classify(mimeType string) Category {
	switch {
	case r.IsImage(mimeType):
		return CategoryImage
	case r.IsVideo(mimeType):
		return CategoryVideo
	case r.IsAudio(mimeType):
		return CategoryAudio
	default:
		return CategoryFile
	}
}

// IconFor maps a MIME type to an icon name. Audio maps to "music".
func (r *Registry) IconFor(mimeType string) Icon {
	switch r.Classify(mimeType) {
	case CategoryImage:
		return IconImage
	case CategoryVideo:
		return IconVideo
	case CategoryAudio:
		return IconMusic
	default:
		return IconFile
	}
}

// ExtensionOf returns the lower-cased extension of name without the dot.
// Returns "" when name has no dot.
func ExtensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
