package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/belphemur/choghadiya/internal/constants"
)

// Order must match supportedLanguages
var supportedTags = []language.Tag{
	language.English,
	language.Hindi,
}

var supportedLanguages = []constants.Language{
	constants.LanguageEnglish,
	constants.LanguageHindi,
}

var languageMatcher = language.NewMatcher(supportedTags)

// ResolveLanguage picks the label language for a request: an explicit ?lang=
// wins, then the Accept-Language header, then the configured default.
func (h *BaseHandler) ResolveLanguage(r *http.Request) constants.Language {
	return resolveLanguage(r, h.Config.Calendar.DefaultLanguage)
}

func resolveLanguage(r *http.Request, fallback constants.Language) constants.Language {
	if q := r.URL.Query().Get("lang"); q != "" {
		if lang, err := constants.ParseLanguage(strings.ToLower(q)); err == nil {
			return lang
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if lang, ok := matchAcceptLanguage(accept); ok {
			return lang
		}
	}

	if !fallback.IsValid() {
		return constants.LanguageEnglish
	}
	return fallback
}

// matchAcceptLanguage matches an Accept-Language header against the supported languages
func matchAcceptLanguage(header string) (constants.Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, confidence := languageMatcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(supportedLanguages) {
		return "", false
	}
	return supportedLanguages[idx], true
}
