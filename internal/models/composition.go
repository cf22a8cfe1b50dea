package models

// ExerciseRequest wraps the user's generation parameters
type ExerciseRequest struct {
	GenerationConfig
	Seed *int64 `json:"seed,omitempty"` // Optional seed for reproducibility
}

// RenderedEvent is an Event with everything a staff renderer needs precomputed
type RenderedEvent struct {
	Event
	MIDI *int   `json:"midi,omitempty"`
	Stem string `json:"stem,omitempty"`
}

// RenderedMeasure mirrors Measure with rendered events
type RenderedMeasure struct {
	Treble []RenderedEvent `json:"treble"`
	Bass   []RenderedEvent `json:"bass"`
}

// Exercise is what rendering sinks receive for one generation call
type Exercise struct {
	ID              string            `json:"id"`
	Seed            int64             `json:"seed"`
	TimeSignature   string            `json:"time_signature"`
	BeatsPerMeasure int               `json:"beats_per_measure"`
	Mode            GenerationMode    `json:"mode"`
	ShowTreble      bool              `json:"show_treble"`
	ShowBass        bool              `json:"show_bass"`
	Measures        []RenderedMeasure `json:"measures"`
}

// RenderMeasures attaches MIDI numbers and stem directions to every note
func RenderMeasures(measures []Measure) []RenderedMeasure {
	out := make([]RenderedMeasure, len(measures))
	for i, m := range measures {
		out[i] = RenderedMeasure{
			Treble: renderEvents(m.Treble),
			Bass:   renderEvents(m.Bass),
		}
	}
	return out
}

func renderEvents(events []Event) []RenderedEvent {
	out := make([]RenderedEvent, len(events))
	for i, e := range events {
		out[i] = RenderedEvent{Event: e}
		if midi, ok := e.MIDI(); ok {
			out[i].MIDI = &midi
			out[i].Stem = e.Stem().String()
		}
	}
	return out
}
