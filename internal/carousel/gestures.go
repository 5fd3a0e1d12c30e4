package carousel

import (
	"math"

	"github.com/radikals/radikal/internal/models"
)

// WheelAction is the camera mode change a wheel gesture asks for.
type WheelAction int

const (
	WheelNone WheelAction = iota
	WheelToFocus
	WheelToOverview
)

// Wheel maps a scroll delta onto a camera mode toggle. Deltas inside the
// dead zone are ignored, as is everything during a cinematic transition.
func Wheel(deltaY float64, mode models.CameraMode, transitioning bool) WheelAction {
	if transitioning || math.Abs(deltaY) <= WheelDeadZone {
		return WheelNone
	}
	if deltaY > 0 && mode == models.CameraOverview {
		return WheelToFocus
	}
	if deltaY < 0 && mode == models.CameraFocus {
		return WheelToOverview
	}
	return WheelNone
}

// DoubleClickAction is the outcome of a double-click on a card.
type DoubleClickAction int

const (
	DoubleClickNone DoubleClickAction = iota
	// DoubleClickFocus zooms the camera onto the active card.
	DoubleClickFocus
	// DoubleClickPresent starts the cinematic hand-off into presentation mode.
	DoubleClickPresent
	// DoubleClickActivate makes a non-active card the active one.
	DoubleClickActivate
)

// DoubleClick resolves a double-click on the card at index. On the active
// card it escalates overview -> focus -> presentation; on any other card it
// just activates it.
func DoubleClick(index, activeIndex int, mode models.CameraMode, transitioning bool) DoubleClickAction {
	if transitioning {
		return DoubleClickNone
	}
	if index != activeIndex {
		return DoubleClickActivate
	}
	if mode == models.CameraOverview {
		return DoubleClickFocus
	}
	return DoubleClickPresent
}

// CardAngle returns the resting angle of the card at index.
func CardAngle(index int, count int) float64 {
	if count < 1 {
		return 0
	}
	return float64(index) * (2 * math.Pi / float64(count))
}

// CardPosition returns the X/Z position of the card at index on a ring of
// the given radius.
func CardPosition(index, count int, radius float64) (x, z float64) {
	angle := CardAngle(index, count)
	return math.Sin(angle) * radius, math.Cos(angle) * radius
}
