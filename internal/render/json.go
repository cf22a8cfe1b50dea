package render

import (
	"encoding/json"
	"io"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
)

// JSONSink writes a Document as JSON
type JSONSink struct {
	w      io.Writer
	seed   int64
	Indent string
}

func NewJSONSink(w io.Writer, seed int64) *JSONSink {
	return &JSONSink{w: w, seed: seed, Indent: "  "}
}

func (s *JSONSink) Render(measures []models.Measure, cfg models.GenerationConfig) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", s.Indent)
	return enc.Encode(NewDocument(measures, cfg, s.seed))
}
