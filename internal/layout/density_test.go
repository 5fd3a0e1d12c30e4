package layout

import (
	"strings"
	"testing"

	"github.com/radikals/radikal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestScore_Weights(t *testing.T) {
	s := &models.Slide{
		Title:    strings.Repeat("t", 10), // 10 * 1.5 = 15
		Subtitle: strings.Repeat("s", 10), // 10 * 1.0 = 10
		Content:  strings.Repeat("c", 10), // 10 * 0.5 = 5
		Bullets:  []string{"a", "b"},      // 2 * 15 = 30
	}
	assert.Equal(t, 60.0, Score(s))
}

func TestScore_ImageFactor(t *testing.T) {
	s := &models.Slide{Title: strings.Repeat("t", 100)}
	base := Score(s)

	s.ImageURL = "https://example.com/pic.jpg"
	s.EnableImage = true
	assert.Equal(t, base*1.8, Score(s))

	// A URL without the enable flag does not count
	s.EnableImage = false
	assert.Equal(t, base, Score(s))
}

func TestScore_Monotonic(t *testing.T) {
	prev := -1.0
	for n := 0; n <= 50; n += 10 {
		s := &models.Slide{Content: strings.Repeat("x", n)}
		score := Score(s)
		assert.Greater(t, score, prev)
		prev = score
	}
}

func TestTierForScore_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  Tier
	}{
		{0, TierSpacious},
		{100, TierSpacious},
		{100.5, TierRoomy},
		{200, TierRoomy},
		{201, TierBalanced},
		{400, TierBalanced},
		{401, TierCompact},
		{600, TierCompact},
		{601, TierDense},
		{10000, TierDense},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tierForScore(tc.score), "score %.1f", tc.score)
	}
}

func TestClassesFor_TierTable(t *testing.T) {
	sparse := &models.Slide{Title: "Hi"}
	assert.Equal(t, "text-4xl md:text-7xl", ClassesFor(sparse).TitleSize)
	assert.Equal(t, 32, ClassesFor(sparse).IconSize)

	dense := &models.Slide{
		Title:   strings.Repeat("t", 100),
		Content: strings.Repeat("c", 2000),
	}
	assert.Equal(t, TierDense, TierFor(dense))
	assert.Equal(t, "text-lg md:text-2xl", ClassesFor(dense).TitleSize)
	assert.Equal(t, 16, ClassesFor(dense).IconSize)
}

func TestBodySizing(t *testing.T) {
	short := strings.Repeat("x", 50)
	long := strings.Repeat("x", 350)

	assert.Equal(t, TextSizing{Size: 0.14, LineHeight: 1.5, MaxLen: 400}, BodySizing(short, false))
	assert.Equal(t, TextSizing{Size: 0.11, LineHeight: 1.4, MaxLen: 600}, BodySizing(long, false))

	// With an image the budget halves: the same short text already shrinks
	// at 100 runes instead of 300
	assert.Equal(t, TextSizing{Size: 0.14, LineHeight: 1.5, MaxLen: 150}, BodySizing(short, true))
	assert.Equal(t, TextSizing{Size: 0.11, LineHeight: 1.4, MaxLen: 280}, BodySizing(strings.Repeat("x", 120), true))
}

func TestTitleSize(t *testing.T) {
	assert.Equal(t, 0.35, TitleSize("Short title"))
	assert.Equal(t, 0.25, TitleSize(strings.Repeat("x", 41)))
	// Rune count, not byte count
	assert.Equal(t, 0.35, TitleSize(strings.Repeat("ش", 40)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "hello...", Truncate("hello world", 5))
	// Emphasis markers are stripped before measuring
	assert.Equal(t, "bold text", Truncate("**bold** *text*", 20))
}
