package fileclass

import "strings"

// Config lists the accepted MIME types per category and the upload size cap.
type Config struct {
	ImageTypes  []string
	VideoTypes  []string
	AudioTypes  []string
	MaxFileSize int64
}

// Registry answers membership questions about MIME types and sizes.
// It is immutable after construction.
type Registry struct {
	imageTypes  map[string]struct{}
	videoTypes  map[string]struct{}
	audioTypes  map[string]struct{}
	maxFileSize int64
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{
		imageTypes:  toSet(cfg.ImageTypes),
		videoTypes:  toSet(cfg.VideoTypes),
		audioTypes:  toSet(cfg.AudioTypes),
		maxFileSize: cfg.MaxFileSize,
	}
}

func toSet(types []string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

// MaxFileSize is the configured upload cap in bytes.
func (r *Registry) MaxFileSize() int64 {
	return r.maxFileSize
}

// DefaultMaxFileSize caps uploads at 500 MiB.
const DefaultMaxFileSize = 500 * 1024 * 1024

// DefaultRegistry returns a registry with the platform's accepted formats.
func DefaultRegistry() *Registry {
	return NewRegistry(Config{
		ImageTypes: []string{
			"image/jpeg",
			"image/jpg",
			"image/png",
			"image/gif",
			"image/webp",
			"image/bmp",
			"image/tiff",
		},
		VideoTypes: []string{
			"video/mp4",
			"video/mpeg",
			"video/quicktime",
			"video/x-msvideo",
			"video/x-matroska",
		},
		AudioTypes: []string{
			"audio/mpeg",
			"audio/mp3",
			"audio/wav",
			"audio/ogg",
			"audio/aac",
			"audio/m4a",
		},
		MaxFileSize: DefaultMaxFileSize,
	})
}
