package layout

import "strings"

// Sizing helpers for the 3D card text, which has a hard area budget and so
// scales down and truncates as content grows.

// TextSizing is the body text geometry for a given content length.
type TextSizing struct {
	Size       float64
	LineHeight float64
	MaxLen     int
}

// BodySizing scales body text down as content length increases. The hasImage
// variant has roughly half the horizontal budget.
func BodySizing(text string, hasImage bool) TextSizing {
	length := len([]rune(text))
	if hasImage {
		if length < 100 {
			return TextSizing{Size: 0.14, LineHeight: 1.5, MaxLen: 150}
		}
		return TextSizing{Size: 0.11, LineHeight: 1.4, MaxLen: 280}
	}
	if length < 300 {
		return TextSizing{Size: 0.14, LineHeight: 1.5, MaxLen: 400}
	}
	return TextSizing{Size: 0.11, LineHeight: 1.4, MaxLen: 600}
}

// TitleSize shrinks long titles.
func TitleSize(title string) float64 {
	if len([]rune(title)) > 40 {
		return 0.25
	}
	return 0.35
}

// Truncate cuts text to maxLen runes with an ellipsis, collapsing markdown
// emphasis markers first so the cut does not land inside them.
func Truncate(text string, maxLen int) string {
	clean := strings.NewReplacer("**", "", "*", "", "`", "").Replace(text)
	runes := []rune(clean)
	if len(runes) <= maxLen {
		return clean
	}
	return strings.TrimSpace(string(runes[:maxLen])) + "..."
}
