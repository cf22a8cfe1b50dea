package models

import (
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

// GenerationMode selects which generator builds the measures
type GenerationMode string

const (
	ModeSharedPattern    GenerationMode = "shared"
	ModeFullyIndependent GenerationMode = "independent"
	ModePhraseCoherent   GenerationMode = "phrase"
)

// VoiceRange is the user's pitch window choice for one voice
type VoiceRange struct {
	Center theory.PitchName `json:"center" yaml:"center"`
	Above  int              `json:"above" yaml:"above"`
	Below  int              `json:"below" yaml:"below"`
}

// Window resolves the range against the voice's scale table
func (r VoiceRange) Window(voice theory.Voice) theory.PitchWindow {
	return theory.ResolveWindow(voice, r.Center, r.Above, r.Below)
}

// GenerationConfig is the read-only snapshot a configuration provider supplies
type GenerationConfig struct {
	TimeSignature string     `json:"time_signature" yaml:"time_signature"`
	NumMeasures   int        `json:"num_measures" yaml:"num_measures"`
	Treble        VoiceRange `json:"treble" yaml:"treble"`
	Bass          VoiceRange `json:"bass" yaml:"bass"`

	PhraseCoherent   bool `json:"phrase_coherent" yaml:"phrase_coherent"`
	FullyIndependent bool `json:"fully_independent" yaml:"fully_independent"`

	ShowTreble bool `json:"show_treble" yaml:"show_treble"`
	ShowBass   bool `json:"show_bass" yaml:"show_bass"`
}

// BeatsPerMeasure returns N from the "N/M" time signature, or 0 if it does not parse
func (c GenerationConfig) BeatsPerMeasure() int {
	beats, _, err := theory.ParseTimeSignature(c.TimeSignature)
	if err != nil {
		return 0
	}
	return beats
}

// Mode resolves the mode flags. Phrase-coherent wins over fully-independent.
func (c GenerationConfig) Mode() GenerationMode {
	switch {
	case c.PhraseCoherent:
		return ModePhraseCoherent
	case c.FullyIndependent:
		return ModeFullyIndependent
	default:
		return ModeSharedPattern
	}
}

// Window returns the pitch window configured for a voice
func (c GenerationConfig) Window(voice theory.Voice) theory.PitchWindow {
	if voice == theory.Bass {
		return c.Bass.Window(voice)
	}
	return c.Treble.Window(voice)
}

var (
	ErrInvalidMeasureCount = errors.New("num_measures must be a positive integer")
	ErrNegativeRange       = errors.New("range above/below must be non-negative")
)

// Validate reports why a config would produce nothing. Generation itself never fails;
// outer layers use this to explain an empty result.
func (c GenerationConfig) Validate() error {
	if _, _, err := theory.ParseTimeSignature(c.TimeSignature); err != nil {
		return err
	}
	if c.NumMeasures <= 0 {
		return ErrInvalidMeasureCount
	}

	for _, v := range []struct {
		voice theory.Voice
		r     VoiceRange
	}{{theory.Treble, c.Treble}, {theory.Bass, c.Bass}} {
		if _, err := theory.PitchToMIDI(v.r.Center); err != nil {
			return fmt.Errorf("%s center: %w", v.voice, err)
		}
		if v.r.Above < 0 || v.r.Below < 0 {
			return fmt.Errorf("%s: %w", v.voice, ErrNegativeRange)
		}
	}
	return nil
}
