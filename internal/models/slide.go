package models

import "fmt"

// SlideType identifies which template renders a slide.
type SlideType string

const (
	SlideHero         SlideType = "hero"
	SlideArticle      SlideType = "article"
	SlideContentImage SlideType = "content-image"
	SlideList         SlideType = "list"
	SlideProcess      SlideType = "process"
	SlideTimeline     SlideType = "timeline"
	SlideComparison   SlideType = "comparison"
	SlideStats        SlideType = "stats"
	SlideBigNumber    SlideType = "big-number"
	SlideGrid         SlideType = "grid"
	SlideQuote        SlideType = "quote"
	SlideTeam         SlideType = "team"
	SlideGallery      SlideType = "gallery"
	SlideCTA          SlideType = "cta"
)

// SlideTypes lists every valid slide type in display order.
var SlideTypes = []SlideType{
	SlideHero, SlideArticle, SlideContentImage, SlideList, SlideProcess,
	SlideTimeline, SlideComparison, SlideStats, SlideBigNumber, SlideGrid,
	SlideQuote, SlideTeam, SlideGallery, SlideCTA,
}

// Valid reports whether t is one of the known slide types.
func (t SlideType) Valid() bool {
	for _, known := range SlideTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Slide is one content unit of a presentation.
//
// Bullets carry per-type semantics: plain items for list/grid slides, and
// "label: value" encoded pairs for timeline/stats/process/cta slides (see
// metadata.go for the typed view).
type Slide struct {
	ID          string         `json:"id"`
	SectionID   string         `json:"sectionId"`
	Type        SlideType      `json:"type"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Content     string         `json:"content,omitempty"`
	Bullets     []string       `json:"bullets,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	EnableImage bool           `json:"enableImage,omitempty"`
	Style       *SlideStyle    `json:"style,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// HasImage reports whether the slide should render its image.
func (s *Slide) HasImage() bool {
	return s.EnableImage && s.ImageURL != ""
}

// Clone returns a deep copy of the slide.
func (s *Slide) Clone() *Slide {
	out := *s
	if s.Bullets != nil {
		out.Bullets = append([]string(nil), s.Bullets...)
	}
	if s.Style != nil {
		st := *s.Style
		if s.Style.GradientColors != nil {
			st.GradientColors = append([]string(nil), s.Style.GradientColors...)
		}
		out.Style = &st
	}
	if s.Metadata != nil {
		out.Metadata = cloneMetadata(s.Metadata)
	}
	return &out
}

func cloneMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case []string:
			out[k] = append([]string(nil), val...)
		case []any:
			cp := make([]any, len(val))
			for i, el := range val {
				if sub, ok := el.(map[string]any); ok {
					cp[i] = cloneMetadata(sub)
				} else {
					cp[i] = el
				}
			}
			out[k] = cp
		case map[string]any:
			out[k] = cloneMetadata(val)
		default:
			out[k] = v
		}
	}
	return out
}

// Validate checks structural invariants that do not need document context.
func (s *Slide) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("slide has no id")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("slide %s: unknown type %q", s.ID, s.Type)
	}
	return nil
}
