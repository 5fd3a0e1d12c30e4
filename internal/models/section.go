package models

// Section is a named grouping of slides used for navigation.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Clone returns a copy of the section.
func (s *Section) Clone() *Section {
	out := *s
	return &out
}
