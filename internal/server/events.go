package server

import (
	"github.com/radikals/radikal/internal/camera"
	"github.com/radikals/radikal/internal/models"
)

// Event types sent by viewers over the websocket.
const (
	EventPointerDown = "pointerdown"
	EventPointerMove = "pointermove"
	EventPointerUp   = "pointerup"
	EventWheel       = "wheel"
	EventDoubleClick = "dblclick"
	EventNavigate    = "navigate"
	EventEditStart   = "editstart"
	EventEdit        = "edit"
	EventViewport    = "viewport"
)

// Event is one gesture or edit message from a viewer.
type Event struct {
	Type string `json:"type"`

	// Pointer gestures
	X      float64 `json:"x,omitempty"`
	Button int     `json:"button,omitempty"`

	// Wheel
	DeltaY float64 `json:"deltaY,omitempty"`

	// Card index for dblclick/navigate
	Index int `json:"index,omitempty"`

	// Text edits (debounced server-side)
	SlideID string `json:"slideId,omitempty"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`

	// Viewport aspect for the portrait camera adjustments
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	clientID string
}

// Frame is the per-tick state broadcast to every viewer.
type Frame struct {
	Type           string            `json:"type"`
	Rotation       float64           `json:"rotation"`
	TargetRotation float64           `json:"targetRotation"`
	ActiveIndex    int               `json:"activeIndex"`
	CameraMode     models.CameraMode `json:"cameraMode"`
	Mode           models.AppMode    `json:"mode"`
	Transitioning  bool              `json:"transitioning"`
	Pose           camera.Pose       `json:"pose"`
	CanUndo        bool              `json:"canUndo"`
	CanRedo        bool              `json:"canRedo"`
}
