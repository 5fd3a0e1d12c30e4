// Package history implements the bounded undo/redo snapshot stacks over the
// presentation document. Snapshots are whole-document deep copies rather than
// diffs: memory is traded for exact restoration regardless of how complex the
// mutation was, and the cap bounds growth over long editing sessions.
package history

import "github.com/radikals/radikal/internal/models"

// DefaultMaxLength caps the past stack. Oldest snapshots are evicted first.
const DefaultMaxLength = 5000

// History holds the past and future snapshot stacks. Past and future are
// disjoint; any new save clears future. None of the operations error, they
// are pure no-ops on empty stacks. Never persisted, session-only.
type History struct {
	maxLen int
	past   []*models.Document
	future []*models.Document
}

// New creates a history with the given cap. A non-positive cap uses
// DefaultMaxLength.
func New(maxLen int) *History {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	return &History{maxLen: maxLen}
}

// Save captures the current (pre-mutation) document onto past, evicting the
// oldest entry past the cap, and invalidates any redo state.
func (h *History) Save(current *models.Document) {
	h.past = append(h.past, current.Clone())
	if len(h.past) > h.maxLen {
		h.past = h.past[len(h.past)-h.maxLen:]
	}
	h.future = nil
}

// Undo pops the most recent past snapshot and returns it as the document to
// restore, pushing the current (pre-undo) document onto the front of future.
// Returns nil when there is nothing to undo.
func (h *History) Undo(current *models.Document) *models.Document {
	if len(h.past) == 0 {
		return nil
	}
	previous := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]*models.Document{current.Clone()}, h.future...)
	return previous
}

// Redo pops the first future snapshot and returns it as the document to
// restore, pushing the current document onto past (truncated to the cap).
// Returns nil when there is nothing to redo.
func (h *History) Redo(current *models.Document) *models.Document {
	if len(h.future) == 0 {
		return nil
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current.Clone())
	if len(h.past) > h.maxLen {
		h.past = h.past[len(h.past)-h.maxLen:]
	}
	return next
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// PastLen returns the current depth of the past stack.
func (h *History) PastLen() int { return len(h.past) }

// FutureLen returns the current depth of the future stack.
func (h *History) FutureLen() int { return len(h.future) }

// Oldest returns the oldest retained past snapshot, or nil. Used to verify
// FIFO eviction.
func (h *History) Oldest() *models.Document {
	if len(h.past) == 0 {
		return nil
	}
	return h.past[0]
}
