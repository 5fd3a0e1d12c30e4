// Package deck implements the document mutation API and session state of a
// presentation. A Deck is the single shared application-state object with an
// enumerated set of mutation entry points; it is passed by reference into the
// CLI and the presenter server rather than living as ambient global state.
package deck

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/radikals/radikal/internal/history"
	"github.com/radikals/radikal/internal/i18n"
	"github.com/radikals/radikal/internal/models"
)

// Storage is the persistence surface the deck writes through after every
// content mutation. Write failures are logged and dropped, never raised.
type Storage interface {
	SaveSlides([]*models.Slide) error
	SaveSections([]*models.Section) error
	SaveCamera(*models.CameraConfig) error
	Clear() error
}

// Deck holds the mutable document plus session state. All methods are safe
// for concurrent use; the conceptual model is still a single event loop, the
// mutex only orders server handler and frame-loop access.
type Deck struct {
	mu sync.Mutex

	doc     *models.Document
	hist    *history.History
	storage Storage
	dict    *i18n.Dictionary

	currentSlideIndex int
	mode              models.AppMode
	cameraMode        models.CameraMode
	theme             string
	builderPreview    string // "2d" or "3d"

	transitioning      bool
	transitionGen      uint64
	transitionDuration time.Duration

	now func() time.Time
}

// Option configures a Deck.
type Option func(*Deck)

// WithHistoryLimit overrides the undo stack cap.
func WithHistoryLimit(n int) Option {
	return func(d *Deck) { d.hist = history.New(n) }
}

// WithTransitionDuration overrides the cinematic transition length.
func WithTransitionDuration(dur time.Duration) Option {
	return func(d *Deck) { d.transitionDuration = dur }
}

// New creates a deck over the given document. A nil document starts from the
// built-in defaults; a nil storage keeps the deck purely in memory.
func New(doc *models.Document, storage Storage, lang i18n.Language, opts ...Option) *Deck {
	if doc == nil {
		doc = models.DefaultDocument()
	}
	d := &Deck{
		doc:                doc,
		hist:               history.New(history.DefaultMaxLength),
		storage:            storage,
		dict:               i18n.For(lang),
		mode:               models.ModeDashboard,
		cameraMode:         models.CameraOverview,
		theme:              "dark",
		builderPreview:     "2d",
		transitionDuration: 1200 * time.Millisecond,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dict returns the deck's dictionary for user-facing messages.
func (d *Deck) Dict() *i18n.Dictionary { return d.dict }

// Document returns a deep copy of the current document.
func (d *Deck) Document() *models.Document {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Clone()
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.doc.Slides)
}

// CurrentSlideIndex returns the active slide index.
func (d *Deck) CurrentSlideIndex() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentSlideIndex
}

// --- Navigation ---

// GoToSlide selects a slide by index, wrapping modulo the slide count.
func (d *Deck) GoToSlide(index int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.goToSlideLocked(index)
}

func (d *Deck) goToSlideLocked(index int) {
	n := len(d.doc.Slides)
	if n == 0 {
		return
	}
	d.currentSlideIndex = ((index % n) + n) % n
}

// NextSlide advances the active slide, wrapping at the end.
func (d *Deck) NextSlide() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.goToSlideLocked(d.currentSlideIndex + 1)
}

// PrevSlide steps the active slide back, wrapping at the start.
func (d *Deck) PrevSlide() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.goToSlideLocked(d.currentSlideIndex - 1)
}

// --- History ---

// SaveSnapshot captures the current document onto the undo stack.
func (d *Deck) SaveSnapshot() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hist.Save(d.doc)
}

// Undo restores the most recent snapshot. No-op when the past is empty.
// If the restored slide list is shorter than the active index, the index is
// clamped to the new last slide.
func (d *Deck) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	previous := d.hist.Undo(d.doc)
	if previous == nil {
		return false
	}
	d.doc = previous
	if d.currentSlideIndex >= len(d.doc.Slides) {
		d.currentSlideIndex = len(d.doc.Slides) - 1
	}
	d.persistAll()
	return true
}

// Redo reapplies the most recently undone snapshot. No-op when the future is
// empty.
func (d *Deck) Redo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := d.hist.Redo(d.doc)
	if next == nil {
		return false
	}
	d.doc = next
	if d.currentSlideIndex >= len(d.doc.Slides) {
		d.currentSlideIndex = len(d.doc.Slides) - 1
	}
	d.persistAll()
	return true
}

// CanUndo reports whether an undo is available.
func (d *Deck) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hist.CanUndo()
}

// CanRedo reports whether a redo is available.
func (d *Deck) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hist.CanRedo()
}

// --- Slide mutations ---

// AddSlide appends a new hero slide to the given section, defaulting to the
// first section. The active index moves to the new slide. The "default"
// section id fallback only fires on a document with no sections at all, a
// state the callers are expected to avoid.
func (d *Deck) AddSlide(sectionID string) *models.Slide {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hist.Save(d.doc)

	if sectionID == "" {
		if len(d.doc.Sections) > 0 {
			sectionID = d.doc.Sections[0].ID
		} else {
			sectionID = "default"
		}
	}

	slide := &models.Slide{
		ID:        d.newIDLocked("s"),
		SectionID: sectionID,
		Type:      models.SlideHero,
		Title:     d.dict.NewSlide,
		Subtitle:  d.dict.NewSlideDesc,
	}
	d.doc.Slides = append(d.doc.Slides, slide)
	d.currentSlideIndex = len(d.doc.Slides) - 1
	d.persistSlides()
	return slide
}

// DuplicateSlide clones a slide by id, inserting the copy right after the
// source with a localized copy suffix on the title. The active index moves to
// the clone. Unknown ids are a no-op.
func (d *Deck) DuplicateSlide(id string) *models.Slide {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := d.doc.SlideIndex(id)
	if index == -1 {
		return nil
	}

	d.hist.Save(d.doc)

	clone := d.doc.Slides[index].Clone()
	clone.ID = d.newIDLocked("s")
	clone.Title = fmt.Sprintf("%s %s", clone.Title, d.dict.CopySuffix)

	d.doc.Slides = append(d.doc.Slides, nil)
	copy(d.doc.Slides[index+2:], d.doc.Slides[index+1:])
	d.doc.Slides[index+1] = clone

	d.currentSlideIndex = index + 1
	d.persistSlides()
	return clone
}

// UpdateSlide applies a patch to the slide with the given id. When
// withHistory is true a snapshot is saved first; direct-manipulation callers
// set it on focus entry rather than per keystroke.
func (d *Deck) UpdateSlide(id string, patch SlidePatch, withHistory bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	index := d.doc.SlideIndex(id)
	if index == -1 {
		return ErrSlideNotFound
	}

	if withHistory {
		d.hist.Save(d.doc)
	}
	patch.apply(d.doc.Slides[index])
	d.persistSlides()
	return nil
}

// DeleteSlide removes a slide by id. Deleting the last remaining slide is
// refused. If the removed slide was active, the previous slide becomes
// active, wrapping when it was first; removing a slide before the active one
// decrements the index so it stays on the same logical slide.
func (d *Deck) DeleteSlide(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.doc.Slides) <= 1 {
		return ErrLastSlide
	}
	index := d.doc.SlideIndex(id)
	if index == -1 {
		return ErrSlideNotFound
	}

	d.hist.Save(d.doc)

	d.doc.Slides = append(d.doc.Slides[:index], d.doc.Slides[index+1:]...)

	if index == d.currentSlideIndex {
		d.goToSlideLocked(index - 1)
	} else if index < d.currentSlideIndex {
		d.currentSlideIndex--
	}
	d.persistSlides()
	return nil
}

// MoveSlide removes the slide at from and reinserts it at to. The active
// index follows the moved slide to its destination.
func (d *Deck) MoveSlide(from, to int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := len(d.doc.Slides)
	if from < 0 || from >= n || to < 0 || to >= n {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}

	d.hist.Save(d.doc)

	slide := d.doc.Slides[from]
	rest := append(d.doc.Slides[:from], d.doc.Slides[from+1:]...)
	rest = append(rest, nil)
	copy(rest[to+1:], rest[to:])
	rest[to] = slide
	d.doc.Slides = rest

	d.currentSlideIndex = to
	d.persistSlides()
	return nil
}

// --- Section mutations ---

// AddSection appends a new section with the given title.
func (d *Deck) AddSection(title string) *models.Section {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hist.Save(d.doc)

	section := &models.Section{
		ID:    d.newIDLocked("sec"),
		Title: title,
	}
	d.doc.Sections = append(d.doc.Sections, section)
	d.persistSections()
	return section
}

// DeleteSection removes a section by id. Deleting the last section is
// refused. Slides referencing the deleted section are reassigned to the
// first remaining section so no slide is left orphaned.
func (d *Deck) DeleteSection(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.doc.Sections) <= 1 {
		return ErrLastSection
	}
	found := false
	for _, s := range d.doc.Sections {
		if s.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrSectionNotFound
	}

	d.hist.Save(d.doc)

	fallbackID := "default"
	for _, s := range d.doc.Sections {
		if s.ID != id {
			fallbackID = s.ID
			break
		}
	}
	for _, slide := range d.doc.Slides {
		if slide.SectionID == id {
			slide.SectionID = fallbackID
		}
	}

	kept := d.doc.Sections[:0]
	for _, s := range d.doc.Sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	d.doc.Sections = kept

	d.persistSlides()
	d.persistSections()
	return nil
}

// --- Camera ---

// SetCamera applies a partial camera update. When withHistory is true a
// snapshot is saved first.
func (d *Deck) SetCamera(patch CameraPatch, withHistory bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if withHistory {
		d.hist.Save(d.doc)
	}
	patch.apply(d.doc.Camera)
	d.persistCamera()
}

// CameraConfig returns a copy of the current camera configuration.
func (d *Deck) CameraConfig() *models.CameraConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Camera.Clone()
}

// --- Reset ---

// Reset restores the built-in default document and session state, clears
// persisted storage, and resets the active index and modes. A snapshot is
// saved first so the reset itself is undoable.
func (d *Deck) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.hist.Save(d.doc)

	d.doc = models.DefaultDocument()
	d.currentSlideIndex = 0
	d.cameraMode = models.CameraOverview
	d.mode = models.ModeDashboard

	if d.storage != nil {
		if err := d.storage.Clear(); err != nil {
			slog.Error("failed to clear persisted deck state", "error", err)
		}
	}
}

// --- Persistence (write-through, failures logged and dropped) ---

func (d *Deck) persistSlides() {
	if d.storage == nil {
		return
	}
	if err := d.storage.SaveSlides(d.doc.Slides); err != nil {
		slog.Error("failed to save slides", "error", err)
	}
}

func (d *Deck) persistSections() {
	if d.storage == nil {
		return
	}
	if err := d.storage.SaveSections(d.doc.Sections); err != nil {
		slog.Error("failed to save sections", "error", err)
	}
}

func (d *Deck) persistCamera() {
	if d.storage == nil {
		return
	}
	if err := d.storage.SaveCamera(d.doc.Camera); err != nil {
		slog.Error("failed to save camera config", "error", err)
	}
}

func (d *Deck) persistAll() {
	d.persistSlides()
	d.persistSections()
	d.persistCamera()
}

// newIDLocked derives an id from the wall clock, bumping the millisecond
// until it is unique within the document. Two slides created within the same
// millisecond would otherwise collide.
func (d *Deck) newIDLocked(prefix string) string {
	ms := d.now().UnixMilli()
	for {
		id := fmt.Sprintf("%s-%d", prefix, ms)
		if d.doc.SlideIndex(id) == -1 && !d.hasSectionIDLocked(id) {
			return id
		}
		ms++
	}
}

func (d *Deck) hasSectionIDLocked(id string) bool {
	for _, s := range d.doc.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
