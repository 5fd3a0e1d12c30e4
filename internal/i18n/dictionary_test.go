package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_KnownLanguages(t *testing.T) {
	en := For(English)
	require.NotNil(t, en)
	assert.False(t, en.RTL)
	assert.Equal(t, "New Slide", en.NewSlide)

	fa := For(Farsi)
	require.NotNil(t, fa)
	assert.True(t, fa.RTL)
	assert.NotEmpty(t, fa.ErrLastSlide)
}

func TestFor_UnknownFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, For(English), For(Language("de")))
}

func TestDictionaries_NewSlideDescription(t *testing.T) {
	assert.Equal(t, "Click to edit description", For(English).NewSlideDesc)
	assert.Equal(t, "برای ویرایش توضیحات کلیک کنید", For(Farsi).NewSlideDesc)
}

func TestDictionaries_Complete(t *testing.T) {
	for lang, d := range dictionaries {
		assert.NotEmpty(t, d.NewSlide, lang)
		assert.NotEmpty(t, d.CopySuffix, lang)
		assert.NotEmpty(t, d.ErrLastSlide, lang)
		assert.NotEmpty(t, d.ErrLastSection, lang)
		assert.NotEmpty(t, d.ResetConfirm, lang)
	}
}
