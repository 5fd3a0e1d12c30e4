// Package render exposes what the rendering layer needs from a slide:
// resolved style values with defaults applied, a markdown-subset renderer
// for content and subtitle text, and an image probe with explicit
// loading/loaded/error states.
package render

import "github.com/radikals/radikal/internal/models"

// ResolvedStyle is a SlideStyle with every field populated. Rendering
// templates never see an unset value.
type ResolvedStyle struct {
	FontFamily    models.FontFamily
	TextColor     string
	AccentColor   string
	FontSizeScale float64
	FontWeight    string

	BackgroundType  models.BackgroundType
	BackgroundColor string
	GradientColors  []string
	GradientDegree  float64
	GradientType    string

	Pattern        models.Pattern
	PatternOpacity float64
	OverlayColor   string
	OverlayOpacity float64

	BorderWidth  float64
	BorderColor  string
	BorderRadius float64

	TextAlignment models.TextAlignment
	ContentWidth  float64

	ImageScale    float64
	ImageOffsetX  float64
	ImageOffsetY  float64
	ImageFit      models.ImageFit
	ImageOpacity  float64
	ImageRotation float64

	Animation         models.AnimationType
	AnimationDuration float64
	AnimationDelay    float64
	AnimationEasing   string
}

// ResolveStyle fills defaults for every unset style field of a slide.
func ResolveStyle(s *models.Slide) ResolvedStyle {
	out := ResolvedStyle{
		FontFamily:        models.FontSans,
		FontSizeScale:     1,
		FontWeight:        "normal",
		BackgroundType:    models.BackgroundDefault,
		GradientColors:    []string{"#0f172a", "#1e293b"},
		GradientDegree:    135,
		GradientType:      "linear",
		Pattern:           models.PatternNone,
		PatternOpacity:    0.1,
		OverlayOpacity:    0,
		TextAlignment:     models.AlignCenter,
		ContentWidth:      100,
		ImageScale:        1,
		ImageFit:          models.FitCover,
		ImageOpacity:      1,
		Animation:         models.AnimFadeUp,
		AnimationDuration: 0.5,
		AnimationEasing:   "ease-out",
	}

	st := s.Style
	if st == nil {
		return out
	}

	if st.FontFamily != "" {
		out.FontFamily = st.FontFamily
	}
	out.TextColor = st.TextColor
	out.AccentColor = st.AccentColor
	if st.FontSizeScale != 0 {
		out.FontSizeScale = st.FontSizeScale
	}
	if st.FontWeight != "" {
		out.FontWeight = st.FontWeight
	}
	if st.BackgroundType != "" {
		out.BackgroundType = st.BackgroundType
	}
	out.BackgroundColor = st.BackgroundColor
	if len(st.GradientColors) == 2 {
		out.GradientColors = st.GradientColors
	}
	if st.GradientDegree != 0 {
		out.GradientDegree = st.GradientDegree
	}
	if st.GradientType != "" {
		out.GradientType = st.GradientType
	}
	if st.PatternKind != "" {
		out.Pattern = st.PatternKind
	}
	if st.PatternOpacity != 0 {
		out.PatternOpacity = st.PatternOpacity
	}
	out.OverlayColor = st.OverlayColor
	out.OverlayOpacity = st.OverlayOpacity
	out.BorderWidth = st.BorderWidth
	out.BorderColor = st.BorderColor
	out.BorderRadius = st.BorderRadius
	if st.TextAlignment != "" {
		out.TextAlignment = st.TextAlignment
	}
	if st.ContentWidth != 0 {
		out.ContentWidth = clamp(st.ContentWidth, 50, 100)
	}
	if st.ImageScale != 0 {
		out.ImageScale = st.ImageScale
	}
	out.ImageOffsetX = st.ImageOffsetX
	out.ImageOffsetY = st.ImageOffsetY
	if st.ImageFitMode != "" {
		out.ImageFit = st.ImageFitMode
	}
	if st.ImageOpacity != 0 {
		out.ImageOpacity = st.ImageOpacity
	}
	out.ImageRotation = st.ImageRotation
	if st.Animation != "" {
		out.Animation = st.Animation
	}
	if st.AnimationDuration != 0 {
		out.AnimationDuration = st.AnimationDuration
	}
	out.AnimationDelay = st.AnimationDelay
	if st.AnimationEasing != "" {
		out.AnimationEasing = st.AnimationEasing
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
