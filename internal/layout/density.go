// Package layout scores a slide's textual payload and selects a discrete
// typography/spacing tier. The heuristic is a weighted sum mapped onto a
// lookup table: deterministic, side-effect free, and monotonic in every
// input.
package layout

import "github.com/radikals/radikal/internal/models"

// Score weights. Titles render large so their characters cost the most;
// bullets cost a flat amount each; an enabled image squeezes the remaining
// space, inflating the whole score.
const (
	titleWeight    = 1.5
	subtitleWeight = 1.0
	contentWeight  = 0.5
	bulletWeight   = 15.0
	imageFactor    = 1.8
)

// Tier is a discrete density bucket, 0 (sparse, largest type) through 4
// (dense, smallest type).
type Tier int

const (
	TierSpacious Tier = iota
	TierRoomy
	TierBalanced
	TierCompact
	TierDense
)

// Classes is the fixed set of spacing and typography settings for a tier.
// The class strings are consumed verbatim by the rendering templates.
type Classes struct {
	Padding      string `json:"padding"`
	Gap          string `json:"gap"`
	Spacing      string `json:"spacing"`
	TitleSize    string `json:"titleSize"`
	SubtitleSize string `json:"subtitleSize"`
	BodySize     string `json:"bodySize"`
	SmallSize    string `json:"smallSize"`
	IconSize     int    `json:"iconSize"`
}

// Ascending tier thresholds: a score above thresholds[i] lands in tier 4-i.
var thresholds = [...]float64{600, 400, 200, 100}

var tierClasses = [...]Classes{
	TierSpacious: {
		Padding: "p-8 md:p-16", Gap: "gap-8 md:gap-12", Spacing: "space-y-6 md:space-y-8",
		TitleSize: "text-4xl md:text-7xl", SubtitleSize: "text-2xl md:text-4xl",
		BodySize: "text-lg md:text-2xl", SmallSize: "text-base md:text-lg", IconSize: 32,
	},
	TierRoomy: {
		Padding: "p-8 md:p-12", Gap: "gap-8 md:gap-10", Spacing: "space-y-4 md:space-y-6",
		TitleSize: "text-3xl md:text-5xl", SubtitleSize: "text-xl md:text-3xl",
		BodySize: "text-base md:text-xl", SmallSize: "text-sm md:text-base", IconSize: 28,
	},
	TierBalanced: {
		Padding: "p-6 md:p-10", Gap: "gap-6 md:gap-8", Spacing: "space-y-3 md:space-y-4",
		TitleSize: "text-2xl md:text-4xl", SubtitleSize: "text-lg md:text-xl",
		BodySize: "text-sm md:text-lg", SmallSize: "text-xs md:text-sm", IconSize: 24,
	},
	TierCompact: {
		Padding: "p-5 md:p-8", Gap: "gap-4 md:gap-6", Spacing: "space-y-3",
		TitleSize: "text-xl md:text-3xl", SubtitleSize: "text-base md:text-lg",
		BodySize: "text-sm md:text-base", SmallSize: "text-xs", IconSize: 20,
	},
	TierDense: {
		Padding: "p-4 md:p-6", Gap: "gap-4", Spacing: "space-y-2",
		TitleSize: "text-lg md:text-2xl", SubtitleSize: "text-sm md:text-base",
		BodySize: "text-xs md:text-sm", SmallSize: "text-[10px]", IconSize: 16,
	},
}

// Score computes the weighted density score of a slide.
func Score(s *models.Slide) float64 {
	score := float64(len(s.Title)) * titleWeight
	score += float64(len(s.Subtitle)) * subtitleWeight
	score += float64(len(s.Content)) * contentWeight
	score += float64(len(s.Bullets)) * bulletWeight
	if s.HasImage() {
		score *= imageFactor
	}
	return score
}

// TierFor maps a slide onto its density tier.
func TierFor(s *models.Slide) Tier {
	return tierForScore(Score(s))
}

func tierForScore(score float64) Tier {
	switch {
	case score > thresholds[0]:
		return TierDense
	case score > thresholds[1]:
		return TierCompact
	case score > thresholds[2]:
		return TierBalanced
	case score > thresholds[3]:
		return TierRoomy
	default:
		return TierSpacious
	}
}

// ClassesFor returns the spacing/typography settings for a slide.
func ClassesFor(s *models.Slide) Classes {
	return tierClasses[TierFor(s)]
}
