package fileclass

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidSize is returned for negative byte counts.
var ErrInvalidSize = errors.New("invalid file size")

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize returns a human readable size string with two decimal places,
// scaled by powers of 1024 up to GB. Zero formats as "0 B".
func FormatSize(size int64) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return "0 B", nil
	}
	const unit = 1024
	value := float64(size)
	exp := 0
	for value >= unit && exp < len(sizeUnits)-1 {
		value /= unit
		exp++
	}
	return strconv.FormatFloat(value, 'f', 2, 64) + " " + sizeUnits[exp], nil
}

// IsSizeValid reports whether size fits under the registry cap.
// Negative sizes are never valid.
func (r *Registry) IsSizeValid(size int64) bool {
	return size >= 0 && size <= r.maxFileSize
}
