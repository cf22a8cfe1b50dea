package generator

import (
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

const noteProbability = 0.9

// Slot is one duration in a rhythm, before a voice or pitch is attached
type Slot struct {
	Kind   theory.DurationKind
	IsRest bool
	Beats  float64
}

func newSlot(kind theory.DurationKind) Slot {
	return Slot{Kind: kind, IsRest: kind.IsRest(), Beats: kind.Beats()}
}

// Partition fills a beat budget with randomly chosen notes and rests.
//
// Each step draws note-vs-rest (90% note, notes only while at least one beat
// remains), then picks uniformly among the kinds that still fit. When nothing
// fits, a quarter rest is emitted anyway and the budget goes negative, which
// ends the loop.
func Partition(src Source, beats float64) []Slot {
	var slots []Slot
	remaining := beats

	for remaining > 0 {
		isNote := chance(src, noteProbability) && remaining >= 1

		kinds := theory.RestKinds
		if isNote {
			kinds = theory.NoteKinds
		}

		var fits []theory.DurationKind
		for _, k := range kinds {
			if k.Beats() <= remaining {
				fits = append(fits, k)
			}
		}

		// TODO: confirm whether overshooting with the smallest rest is intended
		// before clamping it; fractional budgets are the only way to get here.
		if len(fits) == 0 {
			slot := newSlot(theory.SmallestRest)
			slots = append(slots, slot)
			remaining -= slot.Beats
			continue
		}

		slot := newSlot(fits[pick(src, len(fits))])
		slots = append(slots, slot)
		remaining -= slot.Beats
	}

	return slots
}

// SumBeats adds up the beat values of a rhythm
func SumBeats(slots []Slot) float64 {
	total := 0.0
	for _, s := range slots {
		total += s.Beats
	}
	return total
}
