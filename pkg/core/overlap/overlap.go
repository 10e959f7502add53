// Package overlap computes who is free when for a session and ranks the
// best common times.
package overlap

import (
	"sort"

	"github.com/daybalancer/findatime/pkg/core/model"
)

// MaxBestTimes caps how many ranked slots are surfaced
const MaxBestTimes = 5

// Compute maps every slot somebody picked to the participants free then,
// in submission order. Slots nobody picked are absent from the map, so
// callers treat a missing key the same as an empty bucket.
func Compute(session model.Session) map[model.SlotID][]model.Participant {
	buckets := make(map[model.SlotID][]model.Participant)
	for _, p := range session.Participants {
		for _, slot := range p.Slots {
			buckets[slot] = append(buckets[slot], p)
		}
	}
	return buckets
}

// RankedSlot is one entry of the best-times list: a slot and everyone free
// during it, in submission order.
type RankedSlot struct {
	Slot         model.SlotID
	Participants []model.Participant
}

// BestTimes ranks the slots where more than one participant overlaps, most
// people first, and returns at most MaxBestTimes entries. A slot only one
// person can attend is not a best time. Ties keep grid enumeration order.
func BestTimes(session model.Session) []RankedSlot {
	buckets := Compute(session)

	ranked := make([]RankedSlot, 0, len(buckets))
	for _, slot := range model.Slots() {
		participants := buckets[slot]
		if len(participants) > 1 {
			ranked = append(ranked, RankedSlot{Slot: slot, Participants: participants})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].Participants) > len(ranked[j].Participants)
	})

	if len(ranked) > MaxBestTimes {
		ranked = ranked[:MaxBestTimes]
	}
	return ranked
}

// CoverageRatio returns the fraction of participants free at a slot, in
// [0,1]. The denominator is floored at 1 so an empty session yields 0
// instead of dividing by zero.
func CoverageRatio(slotParticipants, totalParticipants int) float64 {
	if totalParticipants < 1 {
		totalParticipants = 1
	}
	return float64(slotParticipants) / float64(totalParticipants)
}

// Band is the display intensity tier for a coverage ratio
type Band string

const (
	BandNone Band = "none"
	BandSome Band = "some"
	BandMany Band = "many"
	// BandMost covers "most" and "everyone", which render identically
	BandMost Band = "most"
)

// CoverageBand maps a ratio to its display band
func CoverageBand(ratio float64) Band {
	switch {
	case ratio <= 0:
		return BandNone
	case ratio < 0.33:
		return BandSome
	case ratio < 0.66:
		return BandMany
	default:
		return BandMost
	}
}
