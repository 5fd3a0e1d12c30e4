package deck

import "github.com/radikals/radikal/internal/models"

// SlidePatch is a partial slide update. Nil fields are left untouched;
// non-nil fields replace the slide's value wholesale.
type SlidePatch struct {
	SectionID   *string
	Type        *models.SlideType
	Title       *string
	Subtitle    *string
	Content     *string
	Bullets     []string
	ImageURL    *string
	EnableImage *bool
	Style       *models.SlideStyle
	Metadata    map[string]any
}

func (p SlidePatch) apply(s *models.Slide) {
	if p.SectionID != nil {
		s.SectionID = *p.SectionID
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
	if p.Content != nil {
		s.Content = *p.Content
	}
	if p.Bullets != nil {
		s.Bullets = append([]string(nil), p.Bullets...)
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.EnableImage != nil {
		s.EnableImage = *p.EnableImage
	}
	if p.Style != nil {
		st := *p.Style
		s.Style = &st
	}
	if p.Metadata != nil {
		s.Metadata = p.Metadata
	}
}

// CameraPatch is a partial camera config update.
type CameraPatch struct {
	Radius *float64

	OverviewDistance *float64
	OverviewHeight   *float64
	OverviewLookAtY  *float64
	OverviewFOV      *float64
	OverviewAngle    *float64

	FocusDistance *float64
	FocusHeight   *float64
	FocusLookAtY  *float64
	FocusFOV      *float64
	FocusAngle    *float64

	TransitionDuration *float64
	TransitionTension  *float64
}

func (p CameraPatch) apply(c *models.CameraConfig) {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&c.Radius, p.Radius)
	set(&c.OverviewDistance, p.OverviewDistance)
	set(&c.OverviewHeight, p.OverviewHeight)
	set(&c.OverviewLookAtY, p.OverviewLookAtY)
	set(&c.OverviewFOV, p.OverviewFOV)
	set(&c.OverviewAngle, p.OverviewAngle)
	set(&c.FocusDistance, p.FocusDistance)
	set(&c.FocusHeight, p.FocusHeight)
	set(&c.FocusLookAtY, p.FocusLookAtY)
	set(&c.FocusFOV, p.FocusFOV)
	set(&c.FocusAngle, p.FocusAngle)
	set(&c.TransitionDuration, p.TransitionDuration)
	set(&c.TransitionTension, p.TransitionTension)
}
