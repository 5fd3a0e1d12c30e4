package models

// FontFamily selects the typeface group for a slide.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

// BackgroundType selects how a slide background is painted.
type BackgroundType string

const (
	BackgroundDefault  BackgroundType = "default"
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// Pattern is an optional background overlay pattern.
type Pattern string

const (
	PatternNone    Pattern = "none"
	PatternDots    Pattern = "dots"
	PatternGrid    Pattern = "grid"
	PatternLines   Pattern = "lines"
	PatternChecker Pattern = "checker"
	PatternNoise   Pattern = "noise"
)

// TextAlignment controls horizontal text placement.
type TextAlignment string

const (
	AlignLeft   TextAlignment = "left"
	AlignCenter TextAlignment = "center"
	AlignRight  TextAlignment = "right"
)

// AnimationType names the entrance animation of slide content.
type AnimationType string

const (
	AnimFadeUp     AnimationType = "fade-up"
	AnimFadeIn     AnimationType = "fade-in"
	AnimZoom       AnimationType = "zoom"
	AnimSlideRight AnimationType = "slide-right"
	AnimSlideLeft  AnimationType = "slide-left"
)

// ImageFit controls how a slide image fills its frame.
type ImageFit string

const (
	FitCover   ImageFit = "cover"
	FitContain ImageFit = "contain"
)

// SlideStyle holds the optional visual parameters of a slide. Every field is
// optional; unset fields resolve to defaults at render time (render package).
// It is embedded by value inside a Slide and has no independent lifecycle.
type SlideStyle struct {
	// Typography
	FontFamily    FontFamily `json:"fontFamily,omitempty"`
	TextColor     string     `json:"textColor,omitempty"`
	AccentColor   string     `json:"accentColor,omitempty"`
	FontSizeScale float64    `json:"fontSizeScale,omitempty"` // 1 = default
	FontWeight    string     `json:"fontWeight,omitempty"`

	// Background
	BackgroundType  BackgroundType `json:"backgroundType,omitempty"`
	BackgroundColor string         `json:"backgroundColor,omitempty"`
	GradientColors  []string       `json:"gradientColors,omitempty"`
	GradientDegree  float64        `json:"gradientDegree,omitempty"`
	GradientType    string         `json:"gradientType,omitempty"`

	// Patterns and overlays
	PatternKind    Pattern `json:"pattern,omitempty"`
	PatternOpacity float64 `json:"patternOpacity,omitempty"`
	OverlayColor   string  `json:"overlayColor,omitempty"`
	OverlayOpacity float64 `json:"overlayOpacity,omitempty"`

	// Frame and borders
	BorderWidth  float64 `json:"borderWidth,omitempty"`
	BorderColor  string  `json:"borderColor,omitempty"`
	BorderRadius float64 `json:"borderRadius,omitempty"`

	// Layout
	TextAlignment TextAlignment `json:"textAlignment,omitempty"`
	ContentWidth  float64       `json:"contentWidth,omitempty"` // 50 to 100 percent

	// Image customization
	ImageScale    float64  `json:"imageScale,omitempty"`
	ImageOffsetX  float64  `json:"imageOffsetX,omitempty"`
	ImageOffsetY  float64  `json:"imageOffsetY,omitempty"`
	ImageFitMode  ImageFit `json:"imageFit,omitempty"`
	ImageOpacity  float64  `json:"imageOpacity,omitempty"`
	ImageRotation float64  `json:"imageRotation,omitempty"`

	// Animation
	Animation         AnimationType `json:"animation,omitempty"`
	AnimationDuration float64       `json:"animationDuration,omitempty"`
	AnimationDelay    float64       `json:"animationDelay,omitempty"`
	AnimationEasing   string        `json:"animationEasing,omitempty"`
}
