package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "Hindi", LanguageName("hi"))
	assert.Equal(t, "Marathi", LanguageName("mr"))
	assert.Equal(t, "Tamil", LanguageName("ta"))
}

func TestLanguageNameDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, "English", LanguageName(""))
	assert.Equal(t, "English", LanguageName("xx"))
	assert.Equal(t, "English", LanguageName("HI"), "codes are matched exactly")
}

func TestLanguagesHaveUniqueCodes(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range Languages {
		assert.False(t, seen[l.Code], "duplicate code %q", l.Code)
		seen[l.Code] = true
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Native)
	}
}
