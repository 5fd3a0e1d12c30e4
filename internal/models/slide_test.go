package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideType_Valid(t *testing.T) {
	assert.True(t, SlideHero.Valid())
	assert.True(t, SlideCTA.Valid())
	assert.False(t, SlideType("carousel").Valid())
	assert.False(t, SlideType("").Valid())
}

func TestSlide_HasImage(t *testing.T) {
	s := &Slide{ImageURL: "x.jpg"}
	assert.False(t, s.HasImage(), "URL without enable flag")

	s.EnableImage = true
	assert.True(t, s.HasImage())

	s.ImageURL = ""
	assert.False(t, s.HasImage(), "enable flag without URL")
}

func TestSlide_CloneIsDeep(t *testing.T) {
	original := &Slide{
		ID:      "s1",
		Type:    SlideTeam,
		Bullets: []string{"one"},
		Style:   &SlideStyle{GradientColors: []string{"#000", "#fff"}},
		Metadata: map[string]any{
			"team": []any{map[string]any{"name": "Sara"}},
			"tags": []string{"a"},
		},
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Mutations on the clone must not reach the original
	clone.Bullets[0] = "changed"
	clone.Style.GradientColors[0] = "#123"
	clone.Metadata["team"].([]any)[0].(map[string]any)["name"] = "Omid"
	clone.Metadata["tags"].([]string)[0] = "b"

	assert.Equal(t, "one", original.Bullets[0])
	assert.Equal(t, "#000", original.Style.GradientColors[0])
	assert.Equal(t, "Sara", original.Metadata["team"].([]any)[0].(map[string]any)["name"])
	assert.Equal(t, []string{"a"}, original.Metadata["tags"])
}

func TestSlide_Validate(t *testing.T) {
	assert.NoError(t, (&Slide{ID: "s1", Type: SlideHero}).Validate())
	assert.Error(t, (&Slide{Type: SlideHero}).Validate())
	assert.Error(t, (&Slide{ID: "s1", Type: "bogus"}).Validate())
}

func TestDocument_CloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.Slides[0].Title = "changed"
	clone.Sections[0].Title = "changed"
	clone.Camera.Radius = 99

	assert.NotEqual(t, "changed", doc.Slides[0].Title)
	assert.NotEqual(t, "changed", doc.Sections[0].Title)
	assert.Equal(t, 8.0, doc.Camera.Radius)
}

func TestDocument_SlideIndex(t *testing.T) {
	doc := DefaultDocument()
	assert.Equal(t, 0, doc.SlideIndex("s1"))
	assert.Equal(t, 3, doc.SlideIndex("s4"))
	assert.Equal(t, -1, doc.SlideIndex("missing"))
}

func TestDocument_SectionByID(t *testing.T) {
	doc := DefaultDocument()
	require.NotNil(t, doc.SectionByID("sec2"))
	assert.Equal(t, "Technology", doc.SectionByID("sec2").Title)
	assert.Nil(t, doc.SectionByID("missing"))
}

func TestDefaultDocument_Independent(t *testing.T) {
	a := DefaultDocument()
	b := DefaultDocument()

	a.Slides[0].Title = "mutated"
	assert.Equal(t, "Introduction", b.Slides[0].Title)
}

func TestEveryDefaultSlideValidates(t *testing.T) {
	for _, s := range DefaultDocument().Slides {
		assert.NoError(t, s.Validate(), "slide %s", s.ID)
	}
}
