package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize tokenizes text with lexer and emits tview [color] tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		color := style.Get(token.Type)
		if color.IsZero() {
			sb.WriteString(token.Value)
			continue
		}

		// Map Chroma color to tview [color] tag
		// simple approximation: use hex
		colorText := color.Colour.String()
		sb.WriteString("[" + colorText + "]")
		sb.WriteString(token.Value)
		sb.WriteString("[-]")
	}

	return sb.String(), nil
}

// ColorizeJSONForTview highlights a JSON document for display in a
// tview TextView with dynamic colors enabled.
func ColorizeJSONForTview(jsonStr string, getLexer func(string) chroma.Lexer) (string, error) {
	lexer := getLexer("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return Colorize(jsonStr, "dracula", lexer)
}
