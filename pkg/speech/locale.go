package speech

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a language code cannot be resolved.
var DefaultLocale = language.MustParse("en-US")

// localeTags maps the user-facing language codes to full locale tags.
var localeTags = map[string]language.Tag{
	"en": language.MustParse("en-US"),
	"es": language.MustParse("es-ES"),
	"fr": language.MustParse("fr-FR"),
	"de": language.MustParse("de-DE"),
	"it": language.MustParse("it-IT"),
	"pt": language.MustParse("pt-BR"),
	"ru": language.MustParse("ru-RU"),
	"hi": language.MustParse("hi-IN"),
	"zh": language.MustParse("zh-CN"),
	"ja": language.MustParse("ja-JP"),
	"ko": language.MustParse("ko-KR"),
	"ar": language.MustParse("ar-SA"),
}

// LocaleFor resolves a user language code to a locale tag,
// falling back to DefaultLocale for unrecognized codes.
func LocaleFor(code string) language.Tag {
	if tag, ok := localeTags[strings.ToLower(strings.TrimSpace(code))]; ok {
		return tag
	}
	if tag, err := language.Parse(code); err == nil {
		return tag
	}
	return DefaultLocale
}
