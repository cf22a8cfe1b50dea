package theory

import (
	"encoding/json"
	"math"
)

// PitchWindow is a contiguous, ascending slice of a voice's ScaleTable
type PitchWindow struct {
	voice   Voice
	pitches []PitchName
}

// ResolveWindow computes the allowed pitches for a voice around center.
// A center that is not in the voice's scale yields the full scale.
func ResolveWindow(voice Voice, center PitchName, above, below int) PitchWindow {
	scale := ScaleFor(voice)
	idx := scale.IndexOf(center)
	if idx < 0 {
		return scale.Window()
	}

	start := max(0, idx-below)
	end := min(scale.Len(), idx+above+1)
	if end < start {
		end = start
	}

	pitches := make([]PitchName, end-start)
	copy(pitches, scale.pitches[start:end])
	return PitchWindow{voice: voice, pitches: pitches}
}

func (w PitchWindow) Voice() Voice { return w.voice }

func (w PitchWindow) Len() int { return len(w.pitches) }

func (w PitchWindow) Empty() bool { return len(w.pitches) == 0 }

func (w PitchWindow) At(i int) PitchName { return w.pitches[i] }

// Pitches returns a copy of the window's pitches
func (w PitchWindow) Pitches() []PitchName {
	out := make([]PitchName, len(w.pitches))
	copy(out, w.pitches)
	return out
}

// IndexOf returns the position of p in the window, or -1
func (w PitchWindow) IndexOf(p PitchName) int {
	for i, candidate := range w.pitches {
		if candidate == p {
			return i
		}
	}
	return -1
}

func (w PitchWindow) Contains(p PitchName) bool {
	return w.IndexOf(p) >= 0
}

// Nearest returns the index of the pitch closest to midi by absolute semitone
// distance. Ties go to the earlier pitch. Returns -1 for an empty window.
func (w PitchWindow) Nearest(midi int) int {
	best := -1
	bestDist := math.MaxInt
	for i, p := range w.pitches {
		m, err := PitchToMIDI(p)
		if err != nil {
			continue
		}
		dist := m - midi
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

func (w PitchWindow) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.pitches)
}
