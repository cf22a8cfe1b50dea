package theory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Voice is a clef/staff line: treble or bass
type Voice string

const (
	Treble Voice = "treble"
	Bass   Voice = "bass"
)

// ParseVoice accepts "treble" or "bass" (case insensitive)
func ParseVoice(s string) (Voice, error) {
	switch Voice(strings.ToLower(strings.TrimSpace(s))) {
	case Treble:
		return Treble, nil
	case Bass:
		return Bass, nil
	default:
		return "", fmt.Errorf("unknown voice: %q (expected treble or bass)", s)
	}
}

// PitchName is a "<letter>/<octave>" token such as "c/4"
type PitchName string

// Note semitone offsets from C
var noteOffsets = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// ParsePitch validates a pitch token and returns its letter and octave
func ParsePitch(p PitchName) (letter byte, octave int, err error) {
	s := string(p)
	slash := strings.IndexByte(s, '/')
	if slash != 1 || len(s) < 3 {
		return 0, 0, fmt.Errorf("invalid pitch %q: expected <letter>/<octave>", s)
	}

	letter = s[0]
	if _, ok := noteOffsets[letter]; !ok {
		return 0, 0, fmt.Errorf("invalid pitch %q: letter must be a-g", s)
	}

	octave, err = strconv.Atoi(s[2:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid octave in pitch %q: %w", s, err)
	}
	// "c/+4" and "c/04" parse but are not canonical tokens
	if strconv.Itoa(octave) != s[2:] {
		return 0, 0, fmt.Errorf("invalid octave in pitch %q: not in canonical form", s)
	}
	return letter, octave, nil
}

// PitchToMIDI converts a pitch token to a MIDI note number.
// midi = (octave+1)*12 + offset, so c/4 = 60.
func PitchToMIDI(p PitchName) (int, error) {
	letter, octave, err := ParsePitch(p)
	if err != nil {
		return 0, err
	}
	return (octave+1)*12 + noteOffsets[letter], nil
}

// MustMIDI is PitchToMIDI for tokens known to come from a ScaleTable
func MustMIDI(p PitchName) int {
	midi, err := PitchToMIDI(p)
	if err != nil {
		panic(err)
	}
	return midi
}

// Valid reports whether p parses as a pitch token
func (p PitchName) Valid() bool {
	_, _, err := ParsePitch(p)
	return err == nil
}

func (p PitchName) String() string {
	return string(p)
}

// StemDirection is the notehead stem orientation
type StemDirection int

const (
	StemUp   StemDirection = 1
	StemDown StemDirection = -1
)

func (d StemDirection) String() string {
	if d == StemDown {
		return "down"
	}
	return "up"
}

func (d StemDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// Stems flip at the middle staff line: B4 on treble, D3 on bass
const (
	trebleStemDownMIDI = 71
	bassStemDownMIDI   = 50
)

// Stem returns the stem direction for a pitch on the given voice
func Stem(voice Voice, pitch PitchName) (StemDirection, error) {
	midi, err := PitchToMIDI(pitch)
	if err != nil {
		return StemUp, err
	}
	return StemForMIDI(voice, midi), nil
}

// StemForMIDI applies the middle-line rule to a MIDI number
func StemForMIDI(voice Voice, midi int) StemDirection {
	threshold := trebleStemDownMIDI
	if voice == Bass {
		threshold = bassStemDownMIDI
	}
	if midi >= threshold {
		return StemDown
	}
	return StemUp
}

// RestDisplayPitch is the staff position renderers use to place rests
func RestDisplayPitch(voice Voice) PitchName {
	if voice == Bass {
		return "d/3"
	}
	return "b/4"
}
