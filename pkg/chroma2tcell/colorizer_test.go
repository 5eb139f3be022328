package chroma2tcell

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

func TestColorizeJSONForTview(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s, err := ColorizeJSONForTview("", lexers.Get)
		assert.NoError(t, err)
		assert.Equal(t, "", s)
	})

	t.Run("simple_json", func(t *testing.T) {
		s, err := ColorizeJSONForTview(`{"category": "image"}`, lexers.Get)
		assert.NoError(t, err)
		assert.Contains(t, s, "[")
		assert.Contains(t, s, "category")
		assert.Contains(t, s, "image")
	})

	t.Run("lexer_not_found", func(t *testing.T) {
		s, err := ColorizeJSONForTview(`{"a": 1}`, func(string) chroma.Lexer { return nil })
		assert.NoError(t, err)
		assert.Contains(t, s, "a")
	})
}

func TestColorize(t *testing.T) {
	// Note: Cannot use t.Parallel() because subtests modify global getStyle and getFallbackStyle
	t.Run("with_lexer", func(t *testing.T) {
		lexer := lexers.Get("json")
		s, err := Colorize(`{"valid": true}`, "dracula", lexer)
		assert.NoError(t, err)
		assert.Contains(t, s, "valid")
	})

	t.Run("unknown_style_uses_fallback", func(t *testing.T) {
		lexer := lexers.Get("json")
		fallbackCalls := 0
		oldGetStyle := getStyle
		oldGetFallbackStyle := getFallbackStyle
		defer func() {
			getStyle = oldGetStyle
			getFallbackStyle = oldGetFallbackStyle
		}()
		getStyle = func(name string) *chroma.Style {
			return nil
		}
		getFallbackStyle = func() *chroma.Style {
			fallbackCalls++
			return styles.Fallback
		}

		_, err := Colorize(`{}`, "no_such_style", lexer)
		assert.NoError(t, err)
		assert.Equal(t, 1, fallbackCalls)
	})
}
