package models

// Document is the full mutable state tracked by history: the slide list, the
// section list, and the camera configuration.
type Document struct {
	Slides   []*Slide      `json:"slides"`
	Sections []*Section    `json:"sections"`
	Camera   *CameraConfig `json:"camera"`
}

// Clone returns a deep copy sharing no references with the receiver. History
// snapshots and the built-in defaults rely on this to guarantee exact,
// alias-free restoration.
func (d *Document) Clone() *Document {
	out := &Document{
		Slides:   make([]*Slide, len(d.Slides)),
		Sections: make([]*Section, len(d.Sections)),
	}
	for i, s := range d.Slides {
		out.Slides[i] = s.Clone()
	}
	for i, s := range d.Sections {
		out.Sections[i] = s.Clone()
	}
	if d.Camera != nil {
		out.Camera = d.Camera.Clone()
	}
	return out
}

// SlideIndex returns the position of the slide with the given id, or -1.
func (d *Document) SlideIndex(id string) int {
	for i, s := range d.Slides {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// SectionByID returns the section with the given id, or nil.
func (d *Document) SectionByID(id string) *Section {
	for _, s := range d.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// AppMode is the top-level application mode.
type AppMode string

const (
	ModeDashboard    AppMode = "dashboard"
	ModePresentation AppMode = "presentation"
	ModeBuilder      AppMode = "builder"
)
