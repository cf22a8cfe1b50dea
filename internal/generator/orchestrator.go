package generator

import (
	"fmt"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

// ConfigProvider supplies the user's choices. It is read once per generation.
type ConfigProvider interface {
	GenerationConfig() (models.GenerationConfig, error)
}

// StaticConfig is a ConfigProvider over a fixed snapshot
type StaticConfig models.GenerationConfig

func (s StaticConfig) GenerationConfig() (models.GenerationConfig, error) {
	return models.GenerationConfig(s), nil
}

// Sink consumes a finished measure sequence, e.g. a staff renderer
type Sink interface {
	Render(measures []models.Measure, cfg models.GenerationConfig) error
}

// Generate dispatches on the config's mode flags. A config with a non-positive
// beat count or measure count yields no measures.
func Generate(cfg models.GenerationConfig, src Source) []models.Measure {
	beats := cfg.BeatsPerMeasure()
	if beats <= 0 || cfg.NumMeasures <= 0 {
		return []models.Measure{}
	}

	treble := cfg.Window(theory.Treble)
	bass := cfg.Window(theory.Bass)

	switch mode := cfg.Mode(); mode {
	case models.ModePhraseCoherent:
		return GeneratePhrase(src, PhraseParams{
			Beats:        beats,
			NumMeasures:  cfg.NumMeasures,
			Treble:       treble,
			Bass:         bass,
			TrebleCenter: cfg.Treble.Center,
			BassCenter:   cfg.Bass.Center,
		})
	default:
		return GenerateIndependent(src, beats, cfg.NumMeasures, treble, bass, mode)
	}
}

// Run reads the provider once, generates, and hands the result to the sink once
func Run(provider ConfigProvider, sink Sink, src Source) ([]models.Measure, error) {
	cfg, err := provider.GenerationConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read generation config: %w", err)
	}

	measures := Generate(cfg, src)

	if err := sink.Render(measures, cfg); err != nil {
		return measures, fmt.Errorf("failed to render measures: %w", err)
	}
	return measures, nil
}
