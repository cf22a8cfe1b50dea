package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchToMIDI(t *testing.T) {
	tests := []struct {
		name     string
		pitch    PitchName
		expected int
	}{
		{name: "middle C", pitch: "c/4", expected: 60},
		{name: "B below middle C", pitch: "b/3", expected: 59},
		{name: "treble top", pitch: "c/6", expected: 84},
		{name: "bass bottom", pitch: "e/2", expected: 40},
		{name: "A440", pitch: "a/4", expected: 69},
		{name: "negative octave", pitch: "c/-1", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			midi, err := PitchToMIDI(tt.pitch)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, midi)
		})
	}
}

func TestPitchToMIDI_Invalid(t *testing.T) {
	invalid := []PitchName{"", "c", "c4", "C/4", "h/4", "c/", "c/x", "cc/4", "c-4", "c/+4", "c/04", "c/-0", "c/ 4"}
	for _, p := range invalid {
		t.Run(string(p), func(t *testing.T) {
			_, err := PitchToMIDI(p)
			assert.Error(t, err)
			assert.False(t, p.Valid())
		})
	}
}

func TestPitchRoundTripThroughScales(t *testing.T) {
	for _, voice := range []Voice{Treble, Bass} {
		scale := ScaleFor(voice)
		prev := -1
		for i := 0; i < scale.Len(); i++ {
			midi := MustMIDI(scale.At(i))
			assert.Greater(t, midi, prev, "%s scale must ascend at %s", voice, scale.At(i))
			prev = midi
		}
	}
}

func TestStemDirection(t *testing.T) {
	tests := []struct {
		voice    Voice
		midi     int
		expected StemDirection
	}{
		{Treble, 70, StemUp},
		{Treble, 71, StemDown},
		{Treble, 84, StemDown},
		{Treble, 57, StemUp},
		{Bass, 49, StemUp},
		{Bass, 50, StemDown},
		{Bass, 40, StemUp},
		{Bass, 64, StemDown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StemForMIDI(tt.voice, tt.midi), "%s midi %d", tt.voice, tt.midi)
	}
}

func TestStem_FromPitch(t *testing.T) {
	dir, err := Stem(Treble, "b/4")
	require.NoError(t, err)
	assert.Equal(t, StemDown, dir)

	dir, err = Stem(Treble, "a/4")
	require.NoError(t, err)
	assert.Equal(t, StemUp, dir)

	dir, err = Stem(Bass, "d/3")
	require.NoError(t, err)
	assert.Equal(t, StemDown, dir)

	dir, err = Stem(Bass, "c/3")
	require.NoError(t, err)
	assert.Equal(t, StemUp, dir)

	_, err = Stem(Bass, "zz")
	assert.Error(t, err)
}

func TestParseVoice(t *testing.T) {
	v, err := ParseVoice("Treble")
	require.NoError(t, err)
	assert.Equal(t, Treble, v)

	v, err = ParseVoice(" bass ")
	require.NoError(t, err)
	assert.Equal(t, Bass, v)

	_, err = ParseVoice("alto")
	assert.Error(t, err)
}

func TestRestDisplayPitch(t *testing.T) {
	assert.Equal(t, PitchName("b/4"), RestDisplayPitch(Treble))
	assert.Equal(t, PitchName("d/3"), RestDisplayPitch(Bass))
}
