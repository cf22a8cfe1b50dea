// Package render turns generated measures into JSON, YAML or terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/sightread-api/internal/generator"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// ParseFormat accepts json, yaml/yml and text
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text", "txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", s)
	}
}

// NewSink returns a generator.Sink writing the given format to w
func NewSink(format Format, w io.Writer, seed int64) (generator.Sink, error) {
	switch format {
	case FormatJSON:
		return NewJSONSink(w, seed), nil
	case FormatYAML:
		return NewYAMLSink(w, seed), nil
	case FormatText:
		return NewTextSink(w, seed), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

// Document is the serialized form of one exercise. Hidden voices are omitted.
type Document struct {
	Seed          int64                 `json:"seed" yaml:"seed"`
	TimeSignature string                `json:"time_signature" yaml:"time_signature"`
	Mode          models.GenerationMode `json:"mode" yaml:"mode"`
	Measures      []DocumentMeasure     `json:"measures" yaml:"measures"`
}

type DocumentMeasure struct {
	Number int             `json:"number" yaml:"number"`
	Treble []DocumentEvent `json:"treble,omitempty" yaml:"treble,omitempty"`
	Bass   []DocumentEvent `json:"bass,omitempty" yaml:"bass,omitempty"`
}

// DocumentEvent carries a display pitch for rests so a staff renderer can place them
type DocumentEvent struct {
	Duration string           `json:"duration" yaml:"duration"`
	Beats    float64          `json:"beats" yaml:"beats"`
	Rest     bool             `json:"rest,omitempty" yaml:"rest,omitempty"`
	Pitch    theory.PitchName `json:"pitch" yaml:"pitch"`
	MIDI     int              `json:"midi,omitempty" yaml:"midi,omitempty"`
	Stem     string           `json:"stem,omitempty" yaml:"stem,omitempty"`
}

// NewDocument builds the serialized form of measures under cfg's visibility flags
func NewDocument(measures []models.Measure, cfg models.GenerationConfig, seed int64) Document {
	doc := Document{
		Seed:          seed,
		TimeSignature: cfg.TimeSignature,
		Mode:          cfg.Mode(),
		Measures:      make([]DocumentMeasure, len(measures)),
	}
	for i, m := range measures {
		dm := DocumentMeasure{Number: i + 1}
		if cfg.ShowTreble {
			dm.Treble = documentEvents(m.Treble, theory.Treble)
		}
		if cfg.ShowBass {
			dm.Bass = documentEvents(m.Bass, theory.Bass)
		}
		doc.Measures[i] = dm
	}
	return doc
}

func documentEvents(events []models.Event, voice theory.Voice) []DocumentEvent {
	out := make([]DocumentEvent, len(events))
	for i, e := range events {
		de := DocumentEvent{
			Duration: e.Kind.String(),
			Beats:    e.Beats,
			Rest:     e.IsRest,
			Pitch:    e.Pitch,
		}
		if e.IsRest {
			de.Pitch = theory.RestDisplayPitch(voice)
		} else if midi, ok := e.MIDI(); ok {
			de.MIDI = midi
			de.Stem = e.Stem().String()
		}
		out[i] = de
	}
	return out
}
