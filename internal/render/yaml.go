package render

import (
	"fmt"
	"io"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// YAMLSink writes a Document as YAML
type YAMLSink struct {
	w    io.Writer
	seed int64
}

func NewYAMLSink(w io.Writer, seed int64) *YAMLSink {
	return &YAMLSink{w: w, seed: seed}
}

func (s *YAMLSink) Render(measures []models.Measure, cfg models.GenerationConfig) error {
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(NewDocument(measures, cfg, s.seed)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
