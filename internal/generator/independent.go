package generator

import (
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

// GenerateIndependent builds measures whose pitches are drawn uniformly from each
// voice's window. In shared-pattern mode both voices reuse one rhythm per measure;
// in fully-independent mode each voice gets its own rhythm.
func GenerateIndependent(
	src Source,
	beats, numMeasures int,
	treble, bass theory.PitchWindow,
	mode models.GenerationMode,
) []models.Measure {
	measures := make([]models.Measure, 0, max(numMeasures, 0))

	for i := 0; i < numMeasures; i++ {
		var m models.Measure
		if mode == models.ModeFullyIndependent {
			m.Treble = voiceEvents(src, Partition(src, float64(beats)), theory.Treble, treble)
			m.Bass = voiceEvents(src, Partition(src, float64(beats)), theory.Bass, bass)
		} else {
			rhythm := Partition(src, float64(beats))
			m.Treble = voiceEvents(src, rhythm, theory.Treble, treble)
			m.Bass = voiceEvents(src, rhythm, theory.Bass, bass)
		}
		measures = append(measures, m)
	}

	return measures
}

// voiceEvents attaches a voice and a random window pitch to each non-rest slot
func voiceEvents(src Source, rhythm []Slot, voice theory.Voice, window theory.PitchWindow) []models.Event {
	events := make([]models.Event, len(rhythm))
	for i, slot := range rhythm {
		if slot.IsRest {
			events[i] = models.NewRest(slot.Kind, voice)
			continue
		}
		events[i] = models.NewNote(slot.Kind, voice, randomPitch(src, window))
	}
	return events
}

// randomPitch draws uniformly from the window, or from the full scale if it is empty
func randomPitch(src Source, window theory.PitchWindow) theory.PitchName {
	if window.Empty() {
		window = theory.ScaleFor(window.Voice()).Window()
	}
	return window.At(pick(src, window.Len()))
}
