package models

import (
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

// Event is a single note or rest on one voice. Pitch is empty iff IsRest.
type Event struct {
	Kind   theory.DurationKind `json:"kind"`
	IsRest bool                `json:"is_rest"`
	Beats  float64             `json:"beats"`
	Voice  theory.Voice        `json:"voice"`
	Pitch  theory.PitchName    `json:"pitch,omitempty"`
}

// NewNote builds a note event of the given kind
func NewNote(kind theory.DurationKind, voice theory.Voice, pitch theory.PitchName) Event {
	return Event{Kind: kind, IsRest: false, Beats: kind.Beats(), Voice: voice, Pitch: pitch}
}

// NewRest builds a rest event of the given kind
func NewRest(kind theory.DurationKind, voice theory.Voice) Event {
	return Event{Kind: kind, IsRest: true, Beats: kind.Beats(), Voice: voice}
}

// MIDI returns the MIDI number of the event's pitch; ok is false for rests
func (e Event) MIDI() (int, bool) {
	if e.IsRest {
		return 0, false
	}
	midi, err := theory.PitchToMIDI(e.Pitch)
	if err != nil {
		return 0, false
	}
	return midi, true
}

// Stem returns the stem direction renderers should draw for the event
func (e Event) Stem() theory.StemDirection {
	midi, ok := e.MIDI()
	if !ok {
		return theory.StemUp
	}
	return theory.StemForMIDI(e.Voice, midi)
}

// Measure holds both voices of one bar, each in left-to-right order
type Measure struct {
	Treble []Event `json:"treble"`
	Bass   []Event `json:"bass"`
}

// Events returns the events of one voice
func (m Measure) Events(voice theory.Voice) []Event {
	if voice == theory.Bass {
		return m.Bass
	}
	return m.Treble
}

// Beats sums the beat values of one voice
func (m Measure) Beats(voice theory.Voice) float64 {
	total := 0.0
	for _, e := range m.Events(voice) {
		total += e.Beats
	}
	return total
}

// Aligned reports whether both voices have the same length and per-slot beats
func (m Measure) Aligned() bool {
	if len(m.Treble) != len(m.Bass) {
		return false
	}
	for i := range m.Treble {
		if m.Treble[i].Beats != m.Bass[i].Beats {
			return false
		}
	}
	return true
}

// CountEvents returns the number of events and rests across measures
func CountEvents(measures []Measure) (events, rests int) {
	count := func(voice []Event) {
		for _, e := range voice {
			events++
			if e.IsRest {
				rests++
			}
		}
	}
	for _, m := range measures {
		count(m.Treble)
		count(m.Bass)
	}
	return events, rests
}
