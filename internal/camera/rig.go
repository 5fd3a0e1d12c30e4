// Package camera implements the virtual camera rig. Each frame the rig
// computes a target pose for the current mode (or the fixed transition pose)
// and exponentially interpolates position, field of view, and look-at target
// toward it. All inputs are numeric and clamped by construction; missing
// config fields are filled with defaults before use.
package camera

import (
	"math"

	"github.com/radikals/radikal/internal/models"
)

const (
	// Handheld jitter applied only in focus mode outside transitions.
	shakeAmplitude = 0.002
	shakeFreqY     = 0.5
	shakeFreqX     = 0.3

	// transitionPushIn is how far in front of the active card the fixed
	// transition pose sits.
	transitionPushIn = 2.0
)

// Pose is the rig's per-frame output.
type Pose struct {
	Position Vec3    `json:"position"`
	LookAt   Vec3    `json:"lookAt"`
	FOV      float64 `json:"fov"`
}

// Rig interpolates the camera between the overview, focus, and transition
// poses. Not safe for concurrent use; the frame loop owns it.
type Rig struct {
	config   *models.CameraConfig
	pose     Pose
	elapsed  float64
	portrait bool
}

// NewRig creates a rig with the given config. Nil or partially zero configs
// fall back to defaults via FillDefaults.
func NewRig(cfg *models.CameraConfig) *Rig {
	cfg = FillDefaults(cfg)
	r := &Rig{config: cfg}
	// Start at the overview pose so the first frames do not sweep in from
	// the origin.
	r.pose = r.targetPose(models.CameraOverview, false)
	return r
}

// SetConfig swaps the camera parameters. Interpolation simply redirects
// toward the new targets.
func (r *Rig) SetConfig(cfg *models.CameraConfig) {
	r.config = FillDefaults(cfg)
}

// SetPortrait toggles the portrait-viewport adjustments: a wider overview
// distance and a longer focus distance so the card still fits.
func (r *Rig) SetPortrait(portrait bool) {
	r.portrait = portrait
}

// Pose returns the current interpolated pose.
func (r *Rig) Pose() Pose { return r.pose }

// Step advances the interpolation by dt seconds and returns the new pose.
func (r *Rig) Step(dt float64, mode models.CameraMode, transitioning bool) Pose {
	r.elapsed += dt

	target := r.targetPose(mode, transitioning)

	duration := r.config.TransitionDuration
	if duration <= 0 {
		duration = 1.5
	}
	speed := 4.0 / duration
	if transitioning {
		speed *= 2
	}

	r.pose.Position = r.pose.Position.Lerp(target.Position, dt*speed)
	r.pose.FOV = lerp(r.pose.FOV, target.FOV, dt*speed)
	// The look-at point settles slightly faster than the position so the
	// framing leads the movement.
	r.pose.LookAt = r.pose.LookAt.Lerp(target.LookAt, dt*(speed+0.5))

	if mode == models.CameraFocus && !transitioning {
		r.pose.Position.Y += math.Sin(r.elapsed*shakeFreqY) * shakeAmplitude
		r.pose.Position.X += math.Cos(r.elapsed*shakeFreqX) * shakeAmplitude
	}

	return r.pose
}

// TargetPose exposes the pose the rig is currently converging to.
func (r *Rig) TargetPose(mode models.CameraMode, transitioning bool) Pose {
	return r.targetPose(mode, transitioning)
}

func (r *Rig) targetPose(mode models.CameraMode, transitioning bool) Pose {
	cfg := r.config

	if transitioning {
		// The fixed transition pose overrides mode selection so the
		// cinematic push-in looks the same regardless of the prior camera
		// mode.
		return Pose{
			Position: Vec3{X: 0, Y: cfg.FocusHeight, Z: cfg.Radius + transitionPushIn},
			LookAt:   Vec3{X: 0, Y: 0, Z: cfg.Radius},
			FOV:      cfg.FocusFOV,
		}
	}

	if mode == models.CameraOverview {
		angle := cfg.OverviewAngle * math.Pi / 180
		dist := cfg.OverviewDistance
		if r.portrait {
			dist *= 1.5
		}
		return Pose{
			Position: Vec3{
				X: math.Sin(angle) * dist,
				Y: cfg.OverviewHeight,
				Z: math.Cos(angle) * dist,
			},
			LookAt: Vec3{X: 0, Y: cfg.OverviewLookAtY, Z: 0},
			FOV:    cfg.OverviewFOV,
		}
	}

	angle := cfg.FocusAngle * math.Pi / 180
	dist := cfg.FocusDistance
	if dist == 0 {
		dist = 5.5
	}
	if r.portrait {
		dist += 4
	}
	return Pose{
		Position: Vec3{
			X: math.Sin(angle) * dist,
			Y: cfg.FocusHeight,
			Z: cfg.Radius + math.Cos(angle)*dist,
		},
		LookAt: Vec3{X: 0, Y: cfg.FocusLookAtY, Z: cfg.Radius},
		FOV:    cfg.FocusFOV,
	}
}

// FillDefaults returns a config with every unset field replaced by its
// default. The input is not modified.
func FillDefaults(cfg *models.CameraConfig) *models.CameraConfig {
	def := models.DefaultCameraConfig()
	if cfg == nil {
		return def
	}
	out := cfg.Clone()
	if out.Radius == 0 {
		out.Radius = def.Radius
	}
	if out.OverviewDistance == 0 {
		out.OverviewDistance = def.OverviewDistance
	}
	if out.OverviewFOV == 0 {
		out.OverviewFOV = def.OverviewFOV
	}
	if out.FocusDistance == 0 {
		out.FocusDistance = def.FocusDistance
	}
	if out.FocusFOV == 0 {
		out.FocusFOV = def.FocusFOV
	}
	if out.TransitionDuration == 0 {
		out.TransitionDuration = def.TransitionDuration
	}
	return out
}
