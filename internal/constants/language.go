package constants

import "fmt"

// Language selects which label set is rendered
type Language string

const (
	// LanguageEnglish renders transliterated labels
	LanguageEnglish Language = "en"
	// LanguageHindi renders Devanagari labels
	LanguageHindi Language = "hi"
)

// IsValid checks if the language value is valid
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageHindi
}

// String returns the string representation of the language
func (l Language) String() string {
	return string(l)
}

// ParseLanguage parses a string into a Language type
// Returns an error if the value is invalid
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if !lang.IsValid() {
		return "", fmt.Errorf("invalid language: %s (must be 'en' or 'hi')", s)
	}
	return lang, nil
}

// GetAllLanguages returns all supported languages, English first
func GetAllLanguages() []Language {
	return []Language{LanguageEnglish, LanguageHindi}
}
