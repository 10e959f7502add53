// Package selection tracks one user's in-progress slot picks while they
// drag across the grid, before the set is submitted. State is local to the
// current editing flow and never persisted.
package selection

import "github.com/daybalancer/findatime/pkg/core/model"

// Mode is the sticky effect of a drag gesture
type Mode int

const (
	// ModeAdd selects every cell the drag passes over
	ModeAdd Mode = iota
	// ModeRemove deselects every cell the drag passes over
	ModeRemove
)

// Session is the two-state (idle / dragging) machine driven by discrete
// pointer events: Press on a cell, Enter as the pointer crosses cells, and
// Release anywhere.
type Session struct {
	slots    model.SlotSet
	dragging bool
	mode     Mode
}

// New returns an idle session with nothing selected
func New() *Session {
	return &Session{slots: model.NewSlotSet()}
}

// Press starts a drag gesture on a cell. Pressing an unselected cell
// selects it and arms ModeAdd; pressing a selected cell deselects it and
// arms ModeRemove. The mode sticks for the whole gesture.
func (s *Session) Press(slot model.SlotID) {
	if s.slots.Has(slot) {
		s.mode = ModeRemove
		s.slots.Remove(slot)
	} else {
		s.mode = ModeAdd
		s.slots.Add(slot)
	}
	s.dragging = true
}

// Enter applies the armed mode to a newly entered cell. Idempotent: a cell
// already in the right state stays put. Ignored while idle.
func (s *Session) Enter(slot model.SlotID) {
	if !s.dragging {
		return
	}
	if s.mode == ModeAdd {
		s.slots.Add(slot)
	} else {
		s.slots.Remove(slot)
	}
}

// Release ends the gesture. It fires on the global pointer-up, so it is
// valid even when the pointer left the grid area.
func (s *Session) Release() {
	s.dragging = false
}

// Reset discards the selection and returns to idle, for a fresh
// submission flow.
func (s *Session) Reset() {
	s.slots = model.NewSlotSet()
	s.dragging = false
}

// Selected returns a copy of the current selection
func (s *Session) Selected() model.SlotSet {
	out := make(model.SlotSet, len(s.slots))
	for slot := range s.slots {
		out.Add(slot)
	}
	return out
}

// Dragging reports whether a gesture is in progress
func (s *Session) Dragging() bool {
	return s.dragging
}

// CurrentMode returns the armed mode; meaningful only while dragging
func (s *Session) CurrentMode() Mode {
	return s.mode
}
