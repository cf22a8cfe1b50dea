package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Conceptual-Machines/sightread-api/internal/generator"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleMeasures() []models.Measure {
	return []models.Measure{{
		Treble: []models.Event{
			models.NewNote(theory.Half, theory.Treble, "c/5"),
			models.NewRest(theory.QuarterRest, theory.Treble),
			models.NewNote(theory.Quarter, theory.Treble, "e/4"),
		},
		Bass: []models.Event{
			models.NewNote(theory.Half, theory.Bass, "c/3"),
			models.NewNote(theory.Quarter, theory.Bass, "g/3"),
			models.NewRest(theory.QuarterRest, theory.Bass),
		},
	}}
}

func sampleConfig() models.GenerationConfig {
	return models.GenerationConfig{
		TimeSignature:  "4/4",
		NumMeasures:    1,
		Treble:         models.VoiceRange{Center: "c/4", Above: 4},
		Bass:           models.VoiceRange{Center: "c/3", Above: 4},
		PhraseCoherent: true,
		ShowTreble:     true,
		ShowBass:       true,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{"", FormatText},
		{"text", FormatText},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("midi")
	assert.Error(t, err)
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(sampleMeasures(), sampleConfig(), 9)

	assert.Equal(t, int64(9), doc.Seed)
	assert.Equal(t, models.ModePhraseCoherent, doc.Mode)
	require.Len(t, doc.Measures, 1)
	m := doc.Measures[0]
	assert.Equal(t, 1, m.Number)

	assert.Equal(t, DocumentEvent{Duration: "h", Beats: 2, Pitch: "c/5", MIDI: 72, Stem: "down"}, m.Treble[0])
	assert.Equal(t, DocumentEvent{Duration: "qr", Beats: 1, Rest: true, Pitch: "b/4"}, m.Treble[1])
	assert.Equal(t, DocumentEvent{Duration: "q", Beats: 1, Pitch: "e/4", MIDI: 64, Stem: "up"}, m.Treble[2])
	assert.Equal(t, DocumentEvent{Duration: "qr", Beats: 1, Rest: true, Pitch: "d/3"}, m.Bass[2])
}

func TestNewDocument_HiddenVoices(t *testing.T) {
	cfg := sampleConfig()
	cfg.ShowBass = false

	doc := NewDocument(sampleMeasures(), cfg, 1)
	assert.Len(t, doc.Measures[0].Treble, 3)
	assert.Nil(t, doc.Measures[0].Bass)
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONSink(&buf, 3).Render(sampleMeasures(), sampleConfig()))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, NewDocument(sampleMeasures(), sampleConfig(), 3), doc)
}

func TestYAMLSink(t *testing.T) {
	cfg := sampleConfig()
	cfg.ShowTreble = false

	var buf bytes.Buffer
	require.NoError(t, NewYAMLSink(&buf, 3).Render(sampleMeasures(), cfg))
	assert.Contains(t, buf.String(), "time_signature: 4/4")
	assert.NotContains(t, buf.String(), "treble:")

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, NewDocument(sampleMeasures(), cfg, 3), doc)
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextSink(&buf, 12).Render(sampleMeasures(), sampleConfig()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "4/4")
	assert.Contains(t, lines[0], "seed 12")

	assert.Contains(t, lines[1], "treble")
	assert.Contains(t, lines[1], "c/5:h")
	assert.Contains(t, lines[1], "qr@b/4")
	assert.Contains(t, lines[2], "bass")
	assert.Contains(t, lines[2], "g/3:q")
	assert.Contains(t, lines[2], "qr@d/3")
}

func TestTextSink_AllVoicesHidden(t *testing.T) {
	cfg := sampleConfig()
	cfg.ShowTreble = false
	cfg.ShowBass = false

	var buf bytes.Buffer
	require.NoError(t, NewTextSink(&buf, 1).Render(sampleMeasures(), cfg))
	assert.Contains(t, buf.String(), "all voices hidden")
}

func TestSinksWithGenerator(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatText} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			sink, err := NewSink(format, &buf, 21)
			require.NoError(t, err)

			cfg := sampleConfig()
			cfg.NumMeasures = 3
			measures, err := generator.Run(generator.StaticConfig(cfg), sink, generator.NewSource(21))
			require.NoError(t, err)
			assert.Len(t, measures, 3)
			assert.NotEmpty(t, buf.String())
		})
	}

	_, err := NewSink("midi", &bytes.Buffer{}, 0)
	assert.Error(t, err)
}
