package inspector

import (
	"mime"
	"os"
	"strings"

	"github.com/scamshield/accesskit/pkg/fileclass"
)

// Report is what the inspector shows for a single file.
type Report struct {
	Name      string             `json:"name"`
	Extension string             `json:"extension,omitempty"`
	MIMEType  string             `json:"mime_type"`
	Category  fileclass.Category `json:"category"`
	Icon      fileclass.Icon     `json:"icon"`
	SizeBytes int64              `json:"size_bytes"`
	Size      string             `json:"size"`
	SizeValid bool               `json:"size_valid"`
	Image     *ImageMeta         `json:"image,omitempty"`
}

const fallbackMIMEType = "application/octet-stream"

var osStat = os.Stat

// MIMETypeOf resolves a file name to a MIME type by extension,
// falling back to application/octet-stream.
func MIMETypeOf(name string) string {
	ext := fileclass.ExtensionOf(name)
	if ext == "" {
		return fallbackMIMEType
	}
	mimeType := mime.TypeByExtension("." + ext)
	if mimeType == "" {
		return fallbackMIMEType
	}
	// Drop parameters such as "; charset=utf-8".
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.TrimSpace(mimeType)
}

// BuildReport stats path and classifies it against the registry.
func BuildReport(registry *fileclass.Registry, path string) (*Report, error) {
	info, err := osStat(path)
	if err != nil {
		return nil, err
	}

	name := info.Name()
	mimeType := MIMETypeOf(name)
	sizeText, err := fileclass.FormatSize(info.Size())
	if err != nil {
		return nil, err
	}

	r := &Report{
		Name:      name,
		Extension: fileclass.ExtensionOf(name),
		MIMEType:  mimeType,
		Category:  registry.Classify(mimeType),
		Icon:      registry.IconFor(mimeType),
		SizeBytes: info.Size(),
		Size:      sizeText,
		SizeValid: registry.IsSizeValid(info.Size()),
	}
	if r.Category == fileclass.CategoryImage {
		r.Image = GetImageMeta(path)
	}
	return r, nil
}
