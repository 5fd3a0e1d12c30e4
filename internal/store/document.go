package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/radikals/radikal/internal/models"
)

// LoadDocument assembles the persisted document. Each of the three keys is
// loaded independently; a missing or malformed key falls back to the built-in
// default for that part without raising an error, matching the browser
// build's localStorage recovery behavior.
func (s *Store) LoadDocument() *models.Document {
	defaults := models.DefaultDocument()
	doc := &models.Document{}

	doc.Slides = defaults.Slides
	if raw, err := s.GetValue(KeySlides); err != nil {
		slog.Warn("failed to load slides, falling back to default", "error", err)
	} else if raw != "" {
		var slides []*models.Slide
		if err := json.Unmarshal([]byte(raw), &slides); err != nil {
			slog.Warn("failed to parse saved slides, falling back to default", "error", err)
		} else {
			doc.Slides = slides
		}
	}

	doc.Sections = defaults.Sections
	if raw, err := s.GetValue(KeySections); err != nil {
		slog.Warn("failed to load sections, falling back to default", "error", err)
	} else if raw != "" {
		var sections []*models.Section
		if err := json.Unmarshal([]byte(raw), &sections); err != nil {
			slog.Warn("failed to parse saved sections, falling back to default", "error", err)
		} else {
			doc.Sections = sections
		}
	}

	doc.Camera = defaults.Camera
	if raw, err := s.GetValue(KeyCamera); err != nil {
		slog.Warn("failed to load camera config, falling back to default", "error", err)
	} else if raw != "" {
		if cam, err := mergeCamera([]byte(raw)); err != nil {
			slog.Warn("failed to parse saved camera config, falling back to default", "error", err)
		} else {
			doc.Camera = cam
		}
	}

	return doc
}

// SaveSlides persists the slide list.
func (s *Store) SaveSlides(slides []*models.Slide) error {
	return s.saveJSON(KeySlides, slides)
}

// SaveSections persists the section list.
func (s *Store) SaveSections(sections []*models.Section) error {
	return s.saveJSON(KeySections, sections)
}

// SaveCamera persists the camera configuration.
func (s *Store) SaveCamera(cam *models.CameraConfig) error {
	return s.saveJSON(KeyCamera, cam)
}

// SaveDocument persists all three parts.
func (s *Store) SaveDocument(doc *models.Document) error {
	if err := s.SaveSlides(doc.Slides); err != nil {
		return err
	}
	if err := s.SaveSections(doc.Sections); err != nil {
		return err
	}
	return s.SaveCamera(doc.Camera)
}

// Clear removes all persisted document state. Used by factory reset.
func (s *Store) Clear() error {
	for _, key := range []string{KeySlides, KeySections, KeyCamera} {
		if err := s.DeleteValue(key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return s.SetValue(key, string(data))
}

// savedCamera is the persisted camera shape. Every field is optional so a
// config written by an older release merges cleanly over the defaults. The
// legacy "distance" and "height" names were replaced by "overviewDistance"
// and "overviewHeight"; the fallback chain is new field, then legacy field,
// then default.
type savedCamera struct {
	Radius *float64 `json:"radius"`

	OverviewDistance *float64 `json:"overviewDistance"`
	OverviewHeight   *float64 `json:"overviewHeight"`
	OverviewLookAtY  *float64 `json:"overviewLookAtY"`
	OverviewFOV      *float64 `json:"overviewFov"`
	OverviewAngle    *float64 `json:"overviewAngle"`

	FocusDistance *float64 `json:"focusDistance"`
	FocusHeight   *float64 `json:"focusHeight"`
	FocusLookAtY  *float64 `json:"focusLookAtY"`
	FocusFOV      *float64 `json:"focusFov"`
	FocusAngle    *float64 `json:"focusAngle"`

	TransitionDuration *float64 `json:"transitionDuration"`
	TransitionTension  *float64 `json:"transitionTension"`

	// Legacy field names (pre-1.0 releases)
	Distance *float64 `json:"distance"`
	Height   *float64 `json:"height"`
}

func mergeCamera(raw []byte) (*models.CameraConfig, error) {
	var saved savedCamera
	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, err
	}

	cam := models.DefaultCameraConfig()
	pick := func(dst *float64, values ...*float64) {
		for _, v := range values {
			if v != nil {
				*dst = *v
				return
			}
		}
	}

	pick(&cam.Radius, saved.Radius)
	pick(&cam.OverviewDistance, saved.OverviewDistance, saved.Distance)
	pick(&cam.OverviewHeight, saved.OverviewHeight, saved.Height)
	pick(&cam.OverviewLookAtY, saved.OverviewLookAtY)
	pick(&cam.OverviewFOV, saved.OverviewFOV)
	pick(&cam.OverviewAngle, saved.OverviewAngle)
	pick(&cam.FocusDistance, saved.FocusDistance)
	pick(&cam.FocusHeight, saved.FocusHeight)
	pick(&cam.FocusLookAtY, saved.FocusLookAtY)
	pick(&cam.FocusFOV, saved.FocusFOV)
	pick(&cam.FocusAngle, saved.FocusAngle)
	pick(&cam.TransitionDuration, saved.TransitionDuration)
	pick(&cam.TransitionTension, saved.TransitionTension)

	return cam, nil
}
