package theory

import (
	"encoding/json"
	"fmt"
)

// DurationKind identifies a note or rest value in the duration catalog
type DurationKind int

const (
	Whole DurationKind = iota
	Half
	Quarter
	WholeRest
	HalfRest
	QuarterRest
)

type durationInfo struct {
	code   string
	beats  float64
	isRest bool
}

var durationTable = map[DurationKind]durationInfo{
	Whole:       {code: "w", beats: 4, isRest: false},
	Half:        {code: "h", beats: 2, isRest: false},
	Quarter:     {code: "q", beats: 1, isRest: false},
	WholeRest:   {code: "wr", beats: 4, isRest: true},
	HalfRest:    {code: "hr", beats: 2, isRest: true},
	QuarterRest: {code: "qr", beats: 1, isRest: true},
}

// NoteKinds and RestKinds are ordered largest value first.
var (
	NoteKinds = []DurationKind{Whole, Half, Quarter}
	RestKinds = []DurationKind{WholeRest, HalfRest, QuarterRest}
)

// SmallestRest is emitted when no catalog entry fits the remaining budget
const SmallestRest = QuarterRest

// Beats returns the beat value of the kind
func (k DurationKind) Beats() float64 {
	return durationTable[k].beats
}

// IsRest reports whether the kind is one of the rest kinds
func (k DurationKind) IsRest() bool {
	return durationTable[k].isRest
}

// Valid reports whether k is a catalog entry
func (k DurationKind) Valid() bool {
	_, ok := durationTable[k]
	return ok
}

// String returns the renderer duration code (w, h, q, wr, hr, qr)
func (k DurationKind) String() string {
	if info, ok := durationTable[k]; ok {
		return info.code
	}
	return fmt.Sprintf("DurationKind(%d)", int(k))
}

// ParseDurationKind parses a renderer duration code
func ParseDurationKind(code string) (DurationKind, error) {
	for kind, info := range durationTable {
		if info.code == code {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown duration code: %q", code)
}

func (k DurationKind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid duration kind %d", int(k))
	}
	return json.Marshal(k.String())
}

func (k *DurationKind) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, err := ParseDurationKind(code)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// NoteKindFor returns the note kind whose value equals beats
func NoteKindFor(beats float64) (DurationKind, bool) {
	return kindFor(NoteKinds, beats)
}

// RestKindFor returns the rest kind whose value equals beats
func RestKindFor(beats float64) (DurationKind, bool) {
	return kindFor(RestKinds, beats)
}

func kindFor(kinds []DurationKind, beats float64) (DurationKind, bool) {
	for _, k := range kinds {
		if k.Beats() == beats {
			return k, true
		}
	}
	return 0, false
}
