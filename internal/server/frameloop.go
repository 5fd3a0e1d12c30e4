package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/radikals/radikal/internal/camera"
	"github.com/radikals/radikal/internal/carousel"
	"github.com/radikals/radikal/internal/deck"
	"github.com/radikals/radikal/internal/models"
)

// tickInterval approximates a 60Hz display refresh. Elapsed time is measured
// per tick rather than assumed constant, so a delayed tick simply advances
// the interpolation further.
const tickInterval = 16 * time.Millisecond

// Engine owns the carousel ring and camera rig and drives them from a ticker,
// applying viewer events between frames. It is the server-side analogue of
// the per-display-refresh callback the browser build hangs off its renderer.
type Engine struct {
	logger *slog.Logger
	deck   *deck.Deck
	hub    *Hub

	ring *carousel.Ring
	rig  *camera.Rig

	editDebounce map[string]*deck.Debouncer
	pendingEdits map[string]deck.SlidePatch
}

// NewEngine creates the frame engine over a deck and hub.
func NewEngine(d *deck.Deck, hub *Hub, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:       logger,
		deck:         d,
		hub:          hub,
		ring:         carousel.NewRing(d.SlideCount(), d.CurrentSlideIndex()),
		rig:          camera.NewRig(d.CameraConfig()),
		editDebounce: make(map[string]*deck.Debouncer),
		pendingEdits: make(map[string]deck.SlidePatch),
	}
}

// Run steps the ring and rig until the context is done, broadcasting a frame
// per tick.
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-e.hub.Events():
			e.handleEvent(event)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			e.step(dt)
		}
	}
}

func (e *Engine) step(dt float64) {
	transitioning := e.deck.IsTransitioning()

	// The document can change under us (CLI edits, REST calls); rebuild the
	// ring geometry when the slide count moves.
	if count := e.deck.SlideCount(); count != e.ring.Count() {
		e.ring.Reset(count, e.deck.CurrentSlideIndex())
	} else if e.ring.ActiveIndex() != e.deck.CurrentSlideIndex() {
		e.ring.SetActiveIndex(e.deck.CurrentSlideIndex(), transitioning)
	}

	e.ring.Step(dt, transitioning)
	e.rig.SetConfig(e.deck.CameraConfig())
	pose := e.rig.Step(dt, e.deck.CameraMode(), transitioning)

	frame := Frame{
		Type:           "frame",
		Rotation:       e.ring.Rotation(),
		TargetRotation: e.ring.TargetRotation(),
		ActiveIndex:    e.ring.ActiveIndex(),
		CameraMode:     e.deck.CameraMode(),
		Mode:           e.deck.Mode(),
		Transitioning:  transitioning,
		Pose:           pose,
		CanUndo:        e.deck.CanUndo(),
		CanRedo:        e.deck.CanRedo(),
	}
	data, err := json.Marshal(frame)
	if err != nil {
		e.logger.Error("failed to marshal frame", "error", err)
		return
	}
	e.hub.Broadcast(data)
}

func (e *Engine) handleEvent(event Event) {
	transitioning := e.deck.IsTransitioning()

	switch event.Type {
	case eventEditFlush:
		patch, ok := e.pendingEdits[event.SlideID]
		if !ok {
			return
		}
		delete(e.pendingEdits, event.SlideID)
		if err := e.deck.UpdateSlide(event.SlideID, patch, false); err != nil {
			e.logger.Warn("debounced edit dropped", "slide", event.SlideID, "error", err)
		}
	case EventPointerDown:
		e.ring.PointerDown(event.Button, event.X, transitioning)

	case EventPointerMove:
		e.ring.PointerMove(event.X, transitioning)

	case EventPointerUp:
		index := e.ring.PointerUp(transitioning)
		e.deck.GoToSlide(index)

	case EventWheel:
		switch carousel.Wheel(event.DeltaY, e.deck.CameraMode(), transitioning) {
		case carousel.WheelToFocus:
			e.deck.SetCameraMode(models.CameraFocus)
		case carousel.WheelToOverview:
			e.deck.SetCameraMode(models.CameraOverview)
		}

	case EventDoubleClick:
		action := carousel.DoubleClick(event.Index, e.ring.ActiveIndex(), e.deck.CameraMode(), transitioning)
		switch action {
		case carousel.DoubleClickFocus:
			e.deck.SetCameraMode(models.CameraFocus)
		case carousel.DoubleClickPresent:
			e.deck.StartPresentationTransition()
		case carousel.DoubleClickActivate:
			e.deck.GoToSlide(event.Index)
			e.ring.SetActiveIndex(event.Index, transitioning)
		}

	case EventNavigate:
		e.deck.GoToSlide(event.Index)
		e.ring.SetActiveIndex(e.deck.CurrentSlideIndex(), transitioning)

	case EventEditStart:
		// History snapshot on focus entry, not per keystroke.
		e.deck.SaveSnapshot()

	case EventEdit:
		e.queueEdit(event)

	case EventViewport:
		e.rig.SetPortrait(event.Width > 0 && event.Width < event.Height)

	default:
		e.logger.Warn("unknown event type", "type", event.Type, "client", event.clientID)
	}
}

// queueEdit coalesces rapid keystrokes into one UpdateSlide per quiet period
// per slide.
func (e *Engine) queueEdit(event Event) {
	patch := e.pendingEdits[event.SlideID]
	value := event.Value
	switch event.Field {
	case "title":
		patch.Title = &value
	case "subtitle":
		patch.Subtitle = &value
	case "content":
		patch.Content = &value
	case "imageUrl":
		patch.ImageURL = &value
	default:
		e.logger.Warn("unknown edit field", "field", event.Field)
		return
	}
	e.pendingEdits[event.SlideID] = patch

	debouncer, ok := e.editDebounce[event.SlideID]
	if !ok {
		debouncer = deck.NewDebouncer(deck.DebounceDelay)
		e.editDebounce[event.SlideID] = debouncer
	}
	slideID := event.SlideID
	debouncer.Trigger(func() {
		e.flushEdit(slideID)
	})
}

func (e *Engine) flushEdit(slideID string) {
	// The debouncer fires on a timer goroutine; route the flush through the
	// event channel so all document access stays on the loop. A full queue
	// retries after the next tick rather than losing the edit.
	select {
	case e.hub.events <- Event{Type: eventEditFlush, SlideID: slideID}:
	default:
		time.AfterFunc(tickInterval, func() { e.flushEdit(slideID) })
	}
}

// eventEditFlush is internal: the debouncer asking the loop to apply a
// pending edit.
const eventEditFlush = "editflush"
