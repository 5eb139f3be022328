package inspector

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/riff"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// ImageMeta holds the decoded header of an image file.
type ImageMeta struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GetImageMeta decodes the image header at path.
// Returns nil when the file cannot be decoded as an image.
func GetImageMeta(path string) *ImageMeta {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil
	}
	return &ImageMeta{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}
