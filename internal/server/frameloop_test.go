package server

import (
	"testing"
	"time"

	"github.com/radikals/radikal/internal/carousel"
	"github.com/radikals/radikal/internal/deck"
	"github.com/radikals/radikal/internal/i18n"
	"github.com/radikals/radikal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	d := deck.New(nil, nil, i18n.English)
	return NewEngine(d, NewHub(nil), nil)
}

func TestEngine_NavigateEvent(t *testing.T) {
	e := newTestEngine(t)

	e.handleEvent(Event{Type: EventNavigate, Index: 2})
	assert.Equal(t, 2, e.deck.CurrentSlideIndex())
	assert.Equal(t, 2, e.ring.ActiveIndex())
}

func TestEngine_DragCommitsSlide(t *testing.T) {
	e := newTestEngine(t)

	e.handleEvent(Event{Type: EventPointerDown, Button: 0, X: 0})
	// Drag backwards far enough to land on the next card
	target := -0.8 * e.ring.AnglePerSlide() / carousel.DragSensitivity
	for i := 1; i <= 10; i++ {
		e.handleEvent(Event{Type: EventPointerMove, X: target * float64(i) / 10})
	}
	e.handleEvent(Event{Type: EventPointerMove, X: target})
	e.handleEvent(Event{Type: EventPointerUp})

	assert.Equal(t, 1, e.deck.CurrentSlideIndex())
}

func TestEngine_WheelTogglesCameraMode(t *testing.T) {
	e := newTestEngine(t)

	e.handleEvent(Event{Type: EventWheel, DeltaY: 100})
	assert.Equal(t, models.CameraFocus, e.deck.CameraMode())

	e.handleEvent(Event{Type: EventWheel, DeltaY: -100})
	assert.Equal(t, models.CameraOverview, e.deck.CameraMode())

	// Dead zone
	e.handleEvent(Event{Type: EventWheel, DeltaY: 5})
	assert.Equal(t, models.CameraOverview, e.deck.CameraMode())
}

func TestEngine_DoubleClickEscalates(t *testing.T) {
	e := newTestEngine(t)

	// Non-active card activates it
	e.handleEvent(Event{Type: EventDoubleClick, Index: 3})
	assert.Equal(t, 3, e.deck.CurrentSlideIndex())

	// Active card in overview focuses
	e.handleEvent(Event{Type: EventDoubleClick, Index: 3})
	assert.Equal(t, models.CameraFocus, e.deck.CameraMode())

	// Active card in focus starts the presentation hand-off
	e.handleEvent(Event{Type: EventDoubleClick, Index: 3})
	assert.True(t, e.deck.IsTransitioning())
}

func TestEngine_EditStartSnapshotsOnce(t *testing.T) {
	e := newTestEngine(t)

	e.handleEvent(Event{Type: EventEditStart, SlideID: "s1"})
	assert.True(t, e.deck.CanUndo())
}

func TestEngine_EditsCoalesceAndFlush(t *testing.T) {
	e := newTestEngine(t)

	// Keystrokes accumulate into a pending patch without touching the deck
	e.handleEvent(Event{Type: EventEdit, SlideID: "s1", Field: "title", Value: "T"})
	e.handleEvent(Event{Type: EventEdit, SlideID: "s1", Field: "title", Value: "Ti"})
	e.handleEvent(Event{Type: EventEdit, SlideID: "s1", Field: "subtitle", Value: "Sub"})
	assert.NotEqual(t, "Ti", e.deck.Document().Slides[0].Title)

	// The debouncer routes the flush back through the event channel
	require.Eventually(t, func() bool {
		select {
		case event := <-e.hub.events:
			e.handleEvent(event)
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	doc := e.deck.Document()
	assert.Equal(t, "Ti", doc.Slides[0].Title)
	assert.Equal(t, "Sub", doc.Slides[0].Subtitle)
	assert.Empty(t, e.pendingEdits)
}

func TestEngine_EditFlushSurvivesFullQueue(t *testing.T) {
	e := newTestEngine(t)

	e.handleEvent(Event{Type: EventEdit, SlideID: "s1", Field: "title", Value: "Queued"})

	// Saturate the event queue so the first flush attempt cannot be posted
	for i := 0; i < cap(e.hub.events); i++ {
		e.hub.events <- Event{Type: EventNavigate}
	}
	time.Sleep(deck.DebounceDelay + 20*time.Millisecond)

	// Draining the backlog must eventually surface the retried flush
	deadline := time.After(time.Second)
	for {
		select {
		case event := <-e.hub.events:
			if event.Type != eventEditFlush {
				continue
			}
			e.handleEvent(event)
			assert.Equal(t, "Queued", e.deck.Document().Slides[0].Title)
			return
		case <-deadline:
			t.Fatal("flush event never arrived")
		}
	}
}

func TestEngine_StepRebuildsRingOnCountChange(t *testing.T) {
	e := newTestEngine(t)
	require.Equal(t, 4, e.ring.Count())

	e.deck.AddSlide("")
	e.step(1.0 / 60)

	assert.Equal(t, 5, e.ring.Count())
	assert.Equal(t, e.deck.CurrentSlideIndex(), e.ring.ActiveIndex())
}

func TestEngine_StepBroadcastsFrame(t *testing.T) {
	e := newTestEngine(t)

	e.step(1.0 / 60)

	select {
	case msg := <-e.hub.broadcast:
		assert.Contains(t, string(msg), `"type":"frame"`)
		assert.Contains(t, string(msg), `"cameraMode":"overview"`)
	default:
		t.Fatal("no frame broadcast")
	}
}
