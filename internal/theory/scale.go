package theory

// ScaleTable is an ascending, fixed pitch sequence for one voice
type ScaleTable struct {
	voice   Voice
	pitches []PitchName
}

var trebleScale = ScaleTable{
	voice: Treble,
	pitches: []PitchName{
		"a/3", "b/3", "c/4", "d/4", "e/4", "f/4", "g/4", "a/4", "b/4",
		"c/5", "d/5", "e/5", "f/5", "g/5", "a/5", "b/5", "c/6",
	},
}

var bassScale = ScaleTable{
	voice: Bass,
	pitches: []PitchName{
		"e/2", "f/2", "g/2", "a/2", "b/2",
		"c/3", "d/3", "e/3", "f/3", "g/3", "a/3", "b/3",
		"c/4", "d/4", "e/4",
	},
}

// ScaleFor returns the scale table of a voice. Unknown voices get the treble table.
func ScaleFor(voice Voice) ScaleTable {
	if voice == Bass {
		return bassScale
	}
	return trebleScale
}

func (s ScaleTable) Voice() Voice { return s.voice }

func (s ScaleTable) Len() int { return len(s.pitches) }

func (s ScaleTable) At(i int) PitchName { return s.pitches[i] }

// IndexOf returns the position of p, or -1 if the table does not contain it
func (s ScaleTable) IndexOf(p PitchName) int {
	for i, candidate := range s.pitches {
		if candidate == p {
			return i
		}
	}
	return -1
}

// Pitches returns a copy of the table
func (s ScaleTable) Pitches() []PitchName {
	out := make([]PitchName, len(s.pitches))
	copy(out, s.pitches)
	return out
}

// Window returns the whole table as a pitch window
func (s ScaleTable) Window() PitchWindow {
	return PitchWindow{voice: s.voice, pitches: s.Pitches()}
}
