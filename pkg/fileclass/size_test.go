package fileclass

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatSize(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		size     int64
		expected string
	}{
		"zero":         {0, "0 B"},
		"one_byte":     {1, "1.00 B"},
		"under_1kb":    {1023, "1023.00 B"},
		"1kb":          {1024, "1.00 KB"},
		"1.5kb":        {1536, "1.50 KB"},
		"1mb":          {1048576, "1.00 MB"},
		"1gb":          {1024 * 1024 * 1024, "1.00 GB"},
		"500mb_cap":    {DefaultMaxFileSize, "500.00 MB"},
		"over_gb_unit": {2048 * 1024 * 1024 * 1024, "2048.00 GB"},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := FormatSize(tc.size)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, s)
		})
	}
}

func TestFormatSize_negative(t *testing.T) {
	t.Parallel()
	_, err := FormatSize(-1)
	assert.Error(t, err)
	assert.IsError(t, err, ErrInvalidSize)
}

func TestRegistry_IsSizeValid(t *testing.T) {
	t.Parallel()
	r := DefaultRegistry()

	assert.True(t, r.IsSizeValid(0))
	assert.True(t, r.IsSizeValid(1))
	assert.True(t, r.IsSizeValid(r.MaxFileSize()))
	assert.False(t, r.IsSizeValid(r.MaxFileSize()+1))
	assert.False(t, r.IsSizeValid(-1))
}
