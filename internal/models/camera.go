package models

// CameraConfig holds the numeric camera parameters for the two named camera
// states plus the shared orbit radius and transition timing. It is owned by
// the whole document and history-tracked alongside slides and sections.
//
// Fields are pointers in the persisted form so a saved config from an older
// release can omit values; LoadCamera in the store package merges them over
// DefaultCameraConfig. In memory the struct is always fully populated.
type CameraConfig struct {
	Radius float64 `json:"radius"`

	// Overview mode
	OverviewDistance float64 `json:"overviewDistance"`
	OverviewHeight   float64 `json:"overviewHeight"`
	OverviewLookAtY  float64 `json:"overviewLookAtY"`
	OverviewFOV      float64 `json:"overviewFov"`
	OverviewAngle    float64 `json:"overviewAngle"` // degrees

	// Focus mode
	FocusDistance float64 `json:"focusDistance"`
	FocusHeight   float64 `json:"focusHeight"`
	FocusLookAtY  float64 `json:"focusLookAtY"`
	FocusFOV      float64 `json:"focusFov"`
	FocusAngle    float64 `json:"focusAngle"` // degrees

	// Animation
	TransitionDuration float64 `json:"transitionDuration"` // seconds
	TransitionTension  float64 `json:"transitionTension"`  // 0-1, spring feel
}

// Clone returns a copy of the config.
func (c *CameraConfig) Clone() *CameraConfig {
	out := *c
	return &out
}

// DefaultCameraConfig returns the built-in camera parameters.
func DefaultCameraConfig() *CameraConfig {
	return &CameraConfig{
		Radius: 8,

		OverviewDistance: 16,
		OverviewHeight:   1.5,
		OverviewLookAtY:  0,
		OverviewFOV:      45,
		OverviewAngle:    0,

		FocusDistance: 5.5,
		FocusHeight:   0,
		FocusLookAtY:  -0.9,
		FocusFOV:      45,
		FocusAngle:    0,

		TransitionDuration: 1.2,
		TransitionTension:  0.5,
	}
}

// CameraMode is either the wide overview shot or the close focus shot.
type CameraMode string

const (
	CameraOverview CameraMode = "overview"
	CameraFocus    CameraMode = "focus"
)
