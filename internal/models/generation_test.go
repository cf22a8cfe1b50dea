package models

import (
	"testing"

	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() GenerationConfig {
	return GenerationConfig{
		TimeSignature: "3/4",
		NumMeasures:   2,
		Treble:        VoiceRange{Center: "c/4", Above: 2, Below: 1},
		Bass:          VoiceRange{Center: "c/3", Above: 1, Below: 0},
		ShowTreble:    true,
		ShowBass:      true,
	}
}

func TestGenerationConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*GenerationConfig) {}},
		{name: "zero measures", mutate: func(c *GenerationConfig) { c.NumMeasures = 0 }, wantErr: ErrInvalidMeasureCount},
		{name: "negative range", mutate: func(c *GenerationConfig) { c.Bass.Below = -1 }, wantErr: ErrNegativeRange},
		{name: "bad time signature", mutate: func(c *GenerationConfig) { c.TimeSignature = "x/4" }},
		{name: "bad center", mutate: func(c *GenerationConfig) { c.Treble.Center = "H/4" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.name == "valid" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestGenerationConfig_Mode(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, ModeSharedPattern, cfg.Mode())

	cfg.FullyIndependent = true
	assert.Equal(t, ModeFullyIndependent, cfg.Mode())

	cfg.PhraseCoherent = true
	assert.Equal(t, ModePhraseCoherent, cfg.Mode())
}

func TestGenerationConfig_BeatsAndWindows(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, 3, cfg.BeatsPerMeasure())

	assert.Equal(t, []theory.PitchName{"b/3", "c/4", "d/4", "e/4"}, cfg.Window(theory.Treble).Pitches())
	assert.Equal(t, []theory.PitchName{"c/3", "d/3"}, cfg.Window(theory.Bass).Pitches())

	cfg.TimeSignature = "bogus"
	assert.Equal(t, 0, cfg.BeatsPerMeasure())
}

func TestPreset_GenerationConfig(t *testing.T) {
	cfg := validConfig()
	cfg.PhraseCoherent = true
	cfg.ShowBass = false

	preset := NewPreset("waltz", "three-four warmup", cfg)
	assert.Equal(t, "waltz", preset.Name)
	assert.Equal(t, "c/3", preset.BassCenter)
	assert.Equal(t, cfg, preset.GenerationConfig())
}
