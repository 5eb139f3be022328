package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleFor(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		code     string
		expected string
	}{
		"english":           {"en", "en-US"},
		"english_upper":     {"EN", "en-US"},
		"spanish":           {"es", "es-ES"},
		"portuguese":        {"pt", "pt-BR"},
		"hindi":             {"hi", "hi-IN"},
		"padded":            {" ja ", "ja-JP"},
		"full_tag_passes":   {"en-GB", "en-GB"},
		"unknown_falls_back": {"xx!", "en-US"},
		"empty_falls_back":   {"", "en-US"},
	} {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, LocaleFor(tc.code).String())
		})
	}
}
