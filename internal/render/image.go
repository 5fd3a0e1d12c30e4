package render

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ImageState is the lifecycle of one slide image.
type ImageState string

const (
	ImageLoading ImageState = "loading"
	ImageLoaded  ImageState = "loaded"
	ImageError   ImageState = "error"
)

// ImageStatus is the probe result for one image URL. An error status is
// per-image; it never affects any other slide or document state.
type ImageStatus struct {
	URL     string     `json:"url"`
	State   ImageState `json:"state"`
	Message string     `json:"message,omitempty"`
}

// ImageProbe checks image URLs ahead of presenting so the viewer can show a
// fallback placeholder instead of a broken frame.
type ImageProbe struct {
	client  *http.Client
	timeout time.Duration
}

// NewImageProbe creates a probe. A nil client uses http.DefaultClient.
func NewImageProbe(client *http.Client) *ImageProbe {
	if client == nil {
		client = http.DefaultClient
	}
	return &ImageProbe{client: client, timeout: 10 * time.Second}
}

// Probe fetches the image headers and resolves the three-state status.
func (p *ImageProbe) Probe(ctx context.Context, url string) ImageStatus {
	status := ImageStatus{URL: url, State: ImageLoading}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		status.State = ImageError
		status.Message = err.Error()
		return status
	}

	resp, err := p.client.Do(req)
	if err != nil {
		status.State = ImageError
		status.Message = err.Error()
		return status
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		status.State = ImageError
		status.Message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		return status
	}
	if !IsImageMIME(resp.Header.Get("Content-Type")) {
		status.State = ImageError
		status.Message = "not an image"
		return status
	}

	status.State = ImageLoaded
	return status
}

// IsImageMIME reports whether a content type is an image type. Used both by
// the probe and by upload validation: a non-image MIME selected for an image
// field is rejected before any document mutation happens.
func IsImageMIME(contentType string) bool {
	mime, _, _ := strings.Cut(contentType, ";")
	return strings.HasPrefix(strings.TrimSpace(mime), "image/")
}
