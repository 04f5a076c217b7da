package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "en", DetectLanguage("The quick brown fox jumps over the lazy dog."))
	assert.Equal(t, "ru", DetectLanguage("Съешь же ещё этих мягких французских булок."))
	assert.Equal(t, "unknown", DetectLanguage(""))
	assert.Equal(t, "unknown", DetectLanguage("   "))
}
