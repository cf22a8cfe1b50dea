package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors of the text sink
type Theme struct {
	Primary lipgloss.Color
	Note    lipgloss.Color
	Dim     lipgloss.Color
}

var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Note:    lipgloss.Color("#e6edf3"),
	Dim:     lipgloss.Color("#6e7681"),
}

type textStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	note  lipgloss.Style
	rest  lipgloss.Style
	bar   lipgloss.Style
}

// TextSink prints one line per visible voice per measure
type TextSink struct {
	w      io.Writer
	seed   int64
	styles textStyles
}

// NewTextSink styles output for w. Colors are dropped when w is not a terminal.
func NewTextSink(w io.Writer, seed int64) *TextSink {
	return NewTextSinkWithTheme(w, seed, DefaultTheme)
}

func NewTextSinkWithTheme(w io.Writer, seed int64, t Theme) *TextSink {
	r := lipgloss.NewRenderer(w)
	return &TextSink{
		w:    w,
		seed: seed,
		styles: textStyles{
			title: r.NewStyle().Bold(true).Foreground(t.Primary),
			label: r.NewStyle().Foreground(t.Primary),
			note:  r.NewStyle().Foreground(t.Note),
			rest:  r.NewStyle().Foreground(t.Dim).Italic(true),
			bar:   r.NewStyle().Foreground(t.Dim),
		},
	}
}

func (s *TextSink) Render(measures []models.Measure, cfg models.GenerationConfig) error {
	var b strings.Builder

	header := fmt.Sprintf("%s  %s  %d measures  seed %d", cfg.TimeSignature, cfg.Mode(), len(measures), s.seed)
	b.WriteString(s.styles.title.Render(header))
	b.WriteString("\n")

	voices := visibleVoices(cfg)
	if len(voices) == 0 {
		b.WriteString(s.styles.rest.Render("(all voices hidden)"))
		b.WriteString("\n")
	}

	for i, m := range measures {
		for _, voice := range voices {
			label := fmt.Sprintf("%3d %-6s", i+1, voice)
			b.WriteString(s.styles.label.Render(label))
			b.WriteString(s.styles.bar.Render(" | "))
			b.WriteString(s.formatEvents(m.Events(voice), voice))
			b.WriteString(s.styles.bar.Render(" |"))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(s.w, b.String())
	return err
}

func (s *TextSink) formatEvents(events []models.Event, voice theory.Voice) string {
	parts := make([]string, len(events))
	for i, e := range events {
		if e.IsRest {
			token := fmt.Sprintf("%s@%s", e.Kind, theory.RestDisplayPitch(voice))
			parts[i] = s.styles.rest.Render(token)
			continue
		}
		parts[i] = s.styles.note.Render(fmt.Sprintf("%s:%s", e.Pitch, e.Kind))
	}
	return strings.Join(parts, " ")
}

func visibleVoices(cfg models.GenerationConfig) []theory.Voice {
	var voices []theory.Voice
	if cfg.ShowTreble {
		voices = append(voices, theory.Treble)
	}
	if cfg.ShowBass {
		voices = append(voices, theory.Bass)
	}
	return voices
}
