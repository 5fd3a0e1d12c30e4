package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/radikals/radikal/internal/deck"
	"github.com/radikals/radikal/internal/layout"
	"github.com/radikals/radikal/internal/models"
	"github.com/radikals/radikal/internal/render"
)

// API handlers. User-rule violations (last slide, last section) surface as
// 409 with the deck's localized message; unknown ids are 404. Nothing here
// panics through to the client.

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) writeDeckError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, deck.ErrLastSlide):
		writeJSON(w, http.StatusConflict, apiError{Error: s.deck.Dict().ErrLastSlide})
	case errors.Is(err, deck.ErrLastSection):
		writeJSON(w, http.StatusConflict, apiError{Error: s.deck.Dict().ErrLastSection})
	case errors.Is(err, deck.ErrSlideNotFound), errors.Is(err, deck.ErrSectionNotFound):
		writeJSON(w, http.StatusNotFound, apiError{Error: err.Error()})
	case errors.Is(err, deck.ErrIndexOutOfRange):
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiError{Error: "internal error"})
	}
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc := s.deck.Document()
	writeJSON(w, http.StatusOK, map[string]any{
		"slides":            doc.Slides,
		"sections":          doc.Sections,
		"camera":            doc.Camera,
		"currentSlideIndex": s.deck.CurrentSlideIndex(),
		"cameraMode":        s.deck.CameraMode(),
		"mode":              s.deck.Mode(),
		"canUndo":           s.deck.CanUndo(),
		"canRedo":           s.deck.CanRedo(),
	})
}

type addSlideRequest struct {
	SectionID string `json:"sectionId"`
}

func (s *Server) handleAddSlide(w http.ResponseWriter, r *http.Request) {
	var req addSlideRequest
	json.NewDecoder(r.Body).Decode(&req) // empty body means default section
	slide := s.deck.AddSlide(req.SectionID)
	writeJSON(w, http.StatusCreated, slide)
}

type updateSlideRequest struct {
	SectionID   *string            `json:"sectionId"`
	Type        *models.SlideType  `json:"type"`
	Title       *string            `json:"title"`
	Subtitle    *string            `json:"subtitle"`
	Content     *string            `json:"content"`
	Bullets     []string           `json:"bullets"`
	ImageURL    *string            `json:"imageUrl"`
	EnableImage *bool              `json:"enableImage"`
	Style       *models.SlideStyle `json:"style"`
	Metadata    map[string]any     `json:"metadata"`
	WithHistory bool               `json:"withHistory"`
}

func (s *Server) handleUpdateSlide(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}
	if req.Type != nil && !req.Type.Valid() {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "unknown slide type"})
		return
	}

	patch := deck.SlidePatch{
		SectionID:   req.SectionID,
		Type:        req.Type,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Content:     req.Content,
		Bullets:     req.Bullets,
		ImageURL:    req.ImageURL,
		EnableImage: req.EnableImage,
		Style:       req.Style,
		Metadata:    req.Metadata,
	}
	if err := s.deck.UpdateSlide(id, patch, req.WithHistory); err != nil {
		s.writeDeckError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteSlide(w http.ResponseWriter, r *http.Request) {
	if err := s.deck.DeleteSlide(mux.Vars(r)["id"]); err != nil {
		s.writeDeckError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDuplicateSlide(w http.ResponseWriter, r *http.Request) {
	clone := s.deck.DuplicateSlide(mux.Vars(r)["id"])
	if clone == nil {
		s.writeDeckError(w, deck.ErrSlideNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, clone)
}

type moveSlideRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (s *Server) handleMoveSlide(w http.ResponseWriter, r *http.Request) {
	var req moveSlideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}
	if err := s.deck.MoveSlide(req.From, req.To); err != nil {
		s.writeDeckError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addSectionRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req addSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "title is required"})
		return
	}
	writeJSON(w, http.StatusCreated, s.deck.AddSection(req.Title))
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := s.deck.DeleteSection(mux.Vars(r)["id"]); err != nil {
		s.writeDeckError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetCamera(w http.ResponseWriter, r *http.Request) {
	var req struct {
		deck.CameraPatch
		WithHistory bool `json:"withHistory"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return
	}
	s.deck.SetCamera(req.CameraPatch, req.WithHistory)
	writeJSON(w, http.StatusOK, s.deck.CameraConfig())
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"applied": s.deck.Undo()})
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"applied": s.deck.Redo()})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.deck.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// handleSlideView returns the fully resolved render payload for one slide:
// resolved style, layout tier classes, rendered markdown, and the decoded
// typed metadata.
func (s *Server) handleSlideView(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	doc := s.deck.Document()

	index := doc.SlideIndex(id)
	if index == -1 {
		s.writeDeckError(w, deck.ErrSlideNotFound)
		return
	}
	slide := doc.Slides[index]

	contentHTML, err := render.Markdown(slide.Content)
	if err != nil {
		s.writeDeckError(w, err)
		return
	}
	subtitleHTML, err := render.Markdown(slide.Subtitle)
	if err != nil {
		s.writeDeckError(w, err)
		return
	}

	view := map[string]any{
		"slide":        slide,
		"style":        render.ResolveStyle(slide),
		"layout":       layout.ClassesFor(slide),
		"contentHtml":  contentHTML,
		"subtitleHtml": subtitleHTML,
		"items":        models.LabeledItems(slide),
	}
	switch slide.Type {
	case models.SlideComparison:
		view["comparison"] = models.Comparison(slide)
	case models.SlideGallery:
		view["galleryImages"] = models.GalleryImages(slide)
	case models.SlideTeam:
		view["team"] = models.Team(slide)
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		})
	}
}
