package models

import "strings"

// Typed views over the loosely-typed bullet and metadata conventions.
//
// Saved documents encode timeline/stats/process/cta items as "label: value"
// strings inside Slide.Bullets. These helpers translate that convention at
// the boundary only; the encoded form stays the source of truth so old saved
// documents keep loading. The split is on the first colon, so a label that
// itself contains a colon is mis-split. That matches the historical format
// and is left as is: fixing it would silently reinterpret existing decks.

// LabeledItem is one decoded "label: value" bullet.
type LabeledItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParseLabeledItem splits a bullet on its first colon. A bullet without a
// colon decodes to a value-only item.
func ParseLabeledItem(bullet string) LabeledItem {
	label, value, found := strings.Cut(bullet, ":")
	if !found {
		return LabeledItem{Value: strings.TrimSpace(bullet)}
	}
	return LabeledItem{
		Label: strings.TrimSpace(label),
		Value: strings.TrimSpace(value),
	}
}

// EncodeLabeledItem renders an item back to its bullet form.
func EncodeLabeledItem(item LabeledItem) string {
	if item.Label == "" {
		return item.Value
	}
	return item.Label + ": " + item.Value
}

// LabeledItems decodes every bullet of a slide.
func LabeledItems(s *Slide) []LabeledItem {
	items := make([]LabeledItem, len(s.Bullets))
	for i, b := range s.Bullets {
		items[i] = ParseLabeledItem(b)
	}
	return items
}

// TeamMember is one entry of a team slide's roster, stored under the "team"
// metadata key.
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ComparisonData is the typed view of a comparison slide's metadata.
type ComparisonData struct {
	LeftTitle  string   `json:"leftTitle"`
	RightTitle string   `json:"rightTitle"`
	LeftItems  []string `json:"leftItems"`
	RightItems []string `json:"rightItems"`
}

// Comparison extracts the comparison columns from slide metadata.
func Comparison(s *Slide) ComparisonData {
	return ComparisonData{
		LeftTitle:  metaString(s.Metadata, "leftTitle"),
		RightTitle: metaString(s.Metadata, "rightTitle"),
		LeftItems:  metaStrings(s.Metadata, "leftItems"),
		RightItems: metaStrings(s.Metadata, "rightItems"),
	}
}

// GalleryImages extracts the image URL list of a gallery slide.
func GalleryImages(s *Slide) []string {
	return metaStrings(s.Metadata, "galleryImages")
}

// Team extracts the roster of a team slide.
func Team(s *Slide) []TeamMember {
	raw, ok := s.Metadata["team"].([]any)
	if !ok {
		return nil
	}
	members := make([]TeamMember, 0, len(raw))
	for _, el := range raw {
		m, ok := el.(map[string]any)
		if !ok {
			continue
		}
		members = append(members, TeamMember{
			Name:     metaString(m, "name"),
			Role:     metaString(m, "role"),
			ImageURL: metaString(m, "imageUrl"),
		})
	}
	return members
}

func metaString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	v, _ := m[key].(string)
	return v
}

func metaStrings(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, el := range v {
			if s, ok := el.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
