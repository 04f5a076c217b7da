package services

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var getLanguageDetector = sync.OnceValue(func() lingua.LanguageDetector {
	return lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English,
			lingua.Russian,
			lingua.Chinese,
			lingua.Japanese,
			lingua.French,
			lingua.German,
			lingua.Spanish,
		).
		Build()
})

// DetectLanguage guesses the post language so viewers can filter feeds by
// language later on. Returns the lowercase ISO 639-1 code, or "unknown".
func DetectLanguage(content string) string {
	if len(strings.TrimSpace(content)) == 0 {
		return "unknown"
	}

	if language, exists := getLanguageDetector().DetectLanguageOf(content); exists {
		return strings.ToLower(language.IsoCode639_1().String())
	}

	return "unknown"
}
