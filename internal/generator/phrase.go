package generator

import (
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

const (
	melodyRestProbability   = 0.15
	harmonyRestProbability  = 0.10
	thirdVariantProbability = 0.25

	fifthSemitones      = 7
	majorThirdSemitones = 4
)

// Melodic step offsets in window-index space and their weights
var (
	melodySteps       = []int{-2, -1, 0, 1, 2}
	melodyStepWeights = []float64{0.05, 0.35, 0.20, 0.35, 0.05}
)

// PhraseParams carries everything the phrase generator needs
type PhraseParams struct {
	Beats        int
	NumMeasures  int
	Treble       theory.PitchWindow
	Bass         theory.PitchWindow
	TrebleCenter theory.PitchName
	BassCenter   theory.PitchName
}

// GeneratePhrase builds rhythmically aligned measures: a stepwise melody on the
// treble and a root/fifth/third line on the bass, both following one curated
// rhythm per measure.
func GeneratePhrase(src Source, p PhraseParams) []models.Measure {
	measures := make([]models.Measure, 0, max(p.NumMeasures, 0))
	if p.Beats <= 0 {
		return measures
	}

	melody := newMelodyWalker(p.Treble, p.TrebleCenter)
	harmony := newHarmonyLine(p.Bass, p.BassCenter)

	for i := 0; i < p.NumMeasures; i++ {
		pattern := choosePattern(src, p.Beats)
		measures = append(measures, models.Measure{
			Treble: melody.measure(src, pattern),
			Bass:   harmony.measure(src, pattern),
		})
	}

	return measures
}

// melodyWalker is a weighted random walk over window indices. The position
// carries over from one measure to the next.
type melodyWalker struct {
	window theory.PitchWindow
	prev   int
}

func newMelodyWalker(window theory.PitchWindow, center theory.PitchName) *melodyWalker {
	if window.Empty() {
		window = theory.ScaleFor(theory.Treble).Window()
	}

	start := window.Len() / 2
	if midi, err := theory.PitchToMIDI(center); err == nil {
		if idx := window.Nearest(midi); idx >= 0 {
			start = idx
		}
	}
	return &melodyWalker{window: window, prev: start}
}

func (w *melodyWalker) measure(src Source, pattern []float64) []models.Event {
	events := make([]models.Event, 0, len(pattern))
	last := len(pattern) - 1

	for slot, beats := range pattern {
		if slot == last && chance(src, melodyRestProbability) {
			events = append(events, restFor(beats, theory.Treble))
			continue
		}
		events = append(events, noteFor(beats, theory.Treble, w.step(src)))
	}
	return events
}

func (w *melodyWalker) step(src Source) theory.PitchName {
	offset := WeightedChoice(melodySteps, melodyStepWeights, src.Float64())
	next := w.prev + offset
	next = max(0, min(w.window.Len()-1, next))
	w.prev = next
	return w.window.At(next)
}

// harmonyLine alternates root and fifth, optionally swapping in the major third
type harmonyLine struct {
	window  theory.PitchWindow
	root    int
	hasRoot bool
}

func newHarmonyLine(window theory.PitchWindow, center theory.PitchName) *harmonyLine {
	h := &harmonyLine{window: window}
	if midi, err := theory.PitchToMIDI(center); err == nil {
		h.root = midi
		h.hasRoot = true
	}
	return h
}

func (h *harmonyLine) measure(src Source, pattern []float64) []models.Event {
	third := chance(src, thirdVariantProbability)
	events := make([]models.Event, 0, len(pattern))
	last := len(pattern) - 1

	for slot, beats := range pattern {
		if slot == last && chance(src, harmonyRestProbability) {
			events = append(events, restFor(beats, theory.Bass))
			continue
		}
		events = append(events, noteFor(beats, theory.Bass, h.pitch(src, slot, third)))
	}
	return events
}

func (h *harmonyLine) pitch(src Source, slot int, third bool) theory.PitchName {
	if h.window.Empty() {
		return randomPitch(src, theory.ScaleFor(theory.Bass).Window())
	}
	if !h.hasRoot {
		return randomPitch(src, h.window)
	}

	target := h.root
	if slot%2 == 1 {
		target += fifthSemitones
	}
	if third && slot%4 == 2 {
		target = h.root + majorThirdSemitones
	}

	return h.window.At(h.window.Nearest(target))
}

func noteFor(beats float64, voice theory.Voice, pitch theory.PitchName) models.Event {
	kind, ok := theory.NoteKindFor(beats)
	if !ok {
		kind = theory.Quarter
	}
	return models.NewNote(kind, voice, pitch)
}

func restFor(beats float64, voice theory.Voice) models.Event {
	kind, ok := theory.RestKindFor(beats)
	if !ok {
		kind = theory.QuarterRest
	}
	return models.NewRest(kind, voice)
}
