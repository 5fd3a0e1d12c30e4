package deck

import (
	"time"

	"github.com/radikals/radikal/internal/models"
)

// Session state accessors. These cover the per-session fields that are never
// persisted or history-tracked: application mode, theme, camera mode, builder
// preview, and the cinematic transition flag.

// Mode returns the current application mode.
func (d *Deck) Mode() models.AppMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// SetMode switches the application mode.
func (d *Deck) SetMode(mode models.AppMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
}

// CameraMode returns the current camera mode.
func (d *Deck) CameraMode() models.CameraMode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cameraMode
}

// SetCameraMode switches between overview and focus.
func (d *Deck) SetCameraMode(mode models.CameraMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cameraMode = mode
}

// Theme returns the UI theme.
func (d *Deck) Theme() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.theme
}

// SetTheme sets the UI theme.
func (d *Deck) SetTheme(theme string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.theme = theme
}

// BuilderPreview returns the builder preview mode ("2d" or "3d").
func (d *Deck) BuilderPreview() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.builderPreview
}

// SetBuilderPreview sets the builder preview mode.
func (d *Deck) SetBuilderPreview(mode string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.builderPreview = mode
}

// IsTransitioning reports whether the cinematic hand-off into presentation
// mode is in flight. All gesture handling is suppressed while it is set.
func (d *Deck) IsTransitioning() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.transitioning
}

// StartPresentationTransition begins the timed hand-off from the carousel
// into presentation mode. After the transition duration the mode flips to
// presentation and the flag clears.
//
// Each start bumps a generation counter and the completion callback only
// applies if its generation is still current, so a stale timer from a rapid
// double trigger cannot clear a newer transition's flag.
func (d *Deck) StartPresentationTransition() {
	d.mu.Lock()
	d.transitioning = true
	d.transitionGen++
	gen := d.transitionGen
	dur := d.transitionDuration
	d.mu.Unlock()

	time.AfterFunc(dur, func() {
		d.finishTransition(gen)
	})
}

func (d *Deck) finishTransition(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.transitionGen {
		// A newer transition superseded this timer.
		return
	}
	d.mode = models.ModePresentation
	d.transitioning = false
}
