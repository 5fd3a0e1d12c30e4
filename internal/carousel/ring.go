// Package carousel implements the interaction state machine of the rotating
// slide ring: pointer drags, wheel gestures, and double-clicks become a
// target rotation and a discrete active index, with inertia-based settling.
//
// The ring is ephemeral per-session state. It is driven by a per-frame Step
// call that receives measured elapsed time; any timer primitive satisfies
// that contract as long as elapsed time is measured rather than assumed
// constant.
package carousel

import "math"

const (
	// DragSensitivity converts horizontal pointer pixels to radians.
	DragSensitivity = 0.003

	// InertiaFactor projects the release velocity forward to predict where
	// the ring would coast to.
	InertiaFactor = 30.0

	// Stiffness is the exponential approach rate toward the target rotation.
	// TransitionStiffness applies while a cinematic transition is running so
	// the active card is centered before the mode switch completes.
	Stiffness           = 6.0
	TransitionStiffness = 10.0

	// WheelDeadZone ignores small wheel deltas to avoid trackpad jitter.
	WheelDeadZone = 10.0
)

// Ring tracks the carousel's rotation and drag state for a given slide count.
type Ring struct {
	count          int
	anglePerSlide  float64
	rotation       float64
	targetRotation float64
	velocity       float64
	dragging       bool
	startX         float64
	lastX          float64
	activeIndex    int
}

// NewRing creates a ring for count slides with the given starting index.
func NewRing(count, activeIndex int) *Ring {
	r := &Ring{}
	r.Reset(count, activeIndex)
	return r
}

// Reset reinitializes the ring, e.g. after the slide count changes. The
// rotation snaps directly to the active card.
func (r *Ring) Reset(count, activeIndex int) {
	if count < 1 {
		count = 1
	}
	if activeIndex < 0 || activeIndex >= count {
		activeIndex = 0
	}
	r.count = count
	r.anglePerSlide = 2 * math.Pi / float64(count)
	r.rotation = -float64(activeIndex) * r.anglePerSlide
	r.targetRotation = r.rotation
	r.velocity = 0
	r.dragging = false
	r.activeIndex = activeIndex
}

// Count returns the slide count the ring was built for.
func (r *Ring) Count() int { return r.count }

// Rotation returns the current ring angle in radians.
func (r *Ring) Rotation() float64 { return r.rotation }

// TargetRotation returns the settle target in radians.
func (r *Ring) TargetRotation() float64 { return r.targetRotation }

// ActiveIndex returns the committed active slide index.
func (r *Ring) ActiveIndex() int { return r.activeIndex }

// Dragging reports whether a drag is in progress.
func (r *Ring) Dragging() bool { return r.dragging }

// AnglePerSlide returns the angular spacing between adjacent cards.
func (r *Ring) AnglePerSlide() float64 { return r.anglePerSlide }

// PointerDown enters the dragging state. Only the primary button starts a
// drag; gestures are suppressed entirely during a cinematic transition.
func (r *Ring) PointerDown(button int, x float64, transitioning bool) bool {
	if transitioning || button != 0 {
		return false
	}
	r.dragging = true
	r.startX = x
	r.lastX = x
	r.velocity = 0
	return true
}

// PointerMove rotates the ring directly under the pointer while dragging and
// records the last delta as the release velocity.
func (r *Ring) PointerMove(x float64, transitioning bool) {
	if transitioning || !r.dragging {
		return
	}
	deltaX := x - r.lastX
	r.lastX = x
	rotDelta := deltaX * DragSensitivity
	r.rotation += rotDelta
	r.velocity = rotDelta
}

// PointerUp exits the dragging state, predicts where inertia would carry the
// ring, snaps the target to the nearest card, and returns the committed
// active index (normalized modulo the slide count).
func (r *Ring) PointerUp(transitioning bool) int {
	if transitioning || !r.dragging {
		return r.activeIndex
	}
	r.dragging = false

	predicted := r.rotation + r.velocity*InertiaFactor
	virtualIndex := -predicted / r.anglePerSlide
	rounded := int(math.Round(virtualIndex))
	r.targetRotation = -float64(rounded) * r.anglePerSlide

	r.activeIndex = ((rounded % r.count) + r.count) % r.count
	return r.activeIndex
}

// SetActiveIndex targets a slide chosen externally (sidebar navigation).
// Among all whole-rotation offsets that land on the new index, the one
// nearest the current rotation is chosen so the visible spin is always less
// than one full turn.
func (r *Ring) SetActiveIndex(index int, transitioning bool) {
	if index < 0 || index >= r.count {
		return
	}
	r.activeIndex = index
	if r.dragging || transitioning {
		return
	}
	currentVirtual := -r.rotation / r.anglePerSlide
	n := math.Round((currentVirtual - float64(index)) / float64(r.count))
	bestK := float64(index) + n*float64(r.count)
	r.targetRotation = -bestK * r.anglePerSlide
}

// Step advances the settle animation by dt seconds. While dragging the user
// owns the rotation and the spring is suspended.
func (r *Ring) Step(dt float64, transitioning bool) {
	if r.dragging {
		return
	}
	stiffness := Stiffness
	if transitioning {
		stiffness = TransitionStiffness
	}
	dist := r.targetRotation - r.rotation
	r.rotation += dist * dt * stiffness
}
