package model

// PaletteSize is the number of display colors cycled across participants
const PaletteSize = 9

// Participant represents one submitted availability response.
// Participants are immutable once created; a re-submission under the same
// name appends a fresh entry rather than editing the old one.
type Participant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Slots      []SlotID `json:"slots"`
	ColorIndex int      `json:"colorIndex"`
}

// SlotSet returns the participant's chosen slots as a set
func (p Participant) SlotSet() SlotSet {
	return NewSlotSet(p.Slots...)
}

// Session represents one scheduling poll identified by a shareable code.
// Participants are kept in submission order; the order drives color
// assignment and the "who responded" listing.
type Session struct {
	Code         string        `json:"code"`
	Title        string        `json:"title"`
	Participants []Participant `json:"participants"`
}

// Clone returns a deep copy so callers can treat sessions as immutable
// snapshots of store state.
func (s Session) Clone() Session {
	copied := Session{
		Code:  s.Code,
		Title: s.Title,
	}
	if s.Participants != nil {
		copied.Participants = make([]Participant, len(s.Participants))
		for i, p := range s.Participants {
			slots := make([]SlotID, len(p.Slots))
			copy(slots, p.Slots)
			p.Slots = slots
			copied.Participants[i] = p
		}
	}
	return copied
}
