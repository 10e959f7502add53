package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Day is a weekday column in the availability grid
type Day string

const (
	Mon Day = "Mon"
	Tue Day = "Tue"
	Wed Day = "Wed"
	Thu Day = "Thu"
	Fri Day = "Fri"
	Sat Day = "Sat"
	Sun Day = "Sun"
)

// Days lists the grid columns in display order
var Days = []Day{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// The grid covers 7am to 8pm inclusive, one row per hour
const (
	HourStart = 7
	HourEnd   = 20
)

// dayIndex maps a day to its column position, -1 for unknown days
func dayIndex(d Day) int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// SlotID identifies one (day, hour) cell in the weekly grid.
// Equality is structural; the zero value is not a valid slot.
type SlotID struct {
	Day  Day
	Hour int
}

// Key returns the canonical string form of the slot, e.g. "Wed-14".
// Keys are unique across the grid domain and stable across runs.
func (s SlotID) Key() string {
	return fmt.Sprintf("%s-%d", s.Day, s.Hour)
}

// Valid reports whether the slot lies inside the grid domain
func (s SlotID) Valid() bool {
	return dayIndex(s.Day) >= 0 && s.Hour >= HourStart && s.Hour <= HourEnd
}

// MarshalText encodes the slot as its key so persisted JSON reads "Wed-14"
func (s SlotID) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid slot %q", s.Key())
	}
	return []byte(s.Key()), nil
}

// UnmarshalText decodes a slot key, rejecting anything outside the grid
func (s *SlotID) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSlot parses a slot key like "Mon-9" back into a SlotID.
// The day must be one of the seven grid days and the hour must be in range.
func ParseSlot(key string) (SlotID, error) {
	day, hourStr, found := strings.Cut(key, "-")
	if !found {
		return SlotID{}, fmt.Errorf("invalid slot key %q: expected Day-Hour", key)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return SlotID{}, fmt.Errorf("invalid slot key %q: hour is not a number: %w", key, err)
	}

	slot := SlotID{Day: Day(day), Hour: hour}
	if !slot.Valid() {
		return SlotID{}, fmt.Errorf("invalid slot key %q: outside the weekly grid", key)
	}
	return slot, nil
}

// Slots enumerates every cell of the weekly grid, day-outer and hour-inner.
// The order is fixed and is used as the deterministic tiebreak everywhere
// a slot ordering matters.
func Slots() []SlotID {
	slots := make([]SlotID, 0, len(Days)*(HourEnd-HourStart+1))
	for _, day := range Days {
		for hour := HourStart; hour <= HourEnd; hour++ {
			slots = append(slots, SlotID{Day: day, Hour: hour})
		}
	}
	return slots
}

// gridOrder returns the position of a slot in the Slots() enumeration
func gridOrder(s SlotID) int {
	return dayIndex(s.Day)*(HourEnd-HourStart+1) + (s.Hour - HourStart)
}

// Less orders slots by grid enumeration position
func (s SlotID) Less(other SlotID) bool {
	return gridOrder(s) < gridOrder(other)
}

// FormatHour renders an hour as a 12-hour display label: "7 am", "12 pm", "1 pm"
func FormatHour(hour int) string {
	switch {
	case hour == 12:
		return "12 pm"
	case hour > 12:
		return fmt.Sprintf("%d pm", hour-12)
	default:
		return fmt.Sprintf("%d am", hour)
	}
}

// SlotSet is an unordered set of grid slots
type SlotSet map[SlotID]struct{}

// NewSlotSet builds a set from the given slots
func NewSlotSet(slots ...SlotID) SlotSet {
	set := make(SlotSet, len(slots))
	for _, slot := range slots {
		set.Add(slot)
	}
	return set
}

// Add inserts a slot into the set
func (set SlotSet) Add(slot SlotID) {
	set[slot] = struct{}{}
}

// Remove deletes a slot from the set, a no-op when absent
func (set SlotSet) Remove(slot SlotID) {
	delete(set, slot)
}

// Has reports whether the slot is in the set
func (set SlotSet) Has(slot SlotID) bool {
	_, ok := set[slot]
	return ok
}

// Sorted returns the set's slots in grid enumeration order
func (set SlotSet) Sorted() []SlotID {
	slots := make([]SlotID, 0, len(set))
	for slot := range set {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Less(slots[j])
	})
	return slots
}
