package models

import (
	"time"

	"github.com/Conceptual-Machines/sightread-api/internal/theory"
)

// Preset is a named GenerationConfig snapshot
type Preset struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	CreatedBy   string    `gorm:"index" json:"created_by"` // Gateway user id, "anonymous" without auth

	TimeSignature string `gorm:"not null;default:'4/4'" json:"time_signature"`
	NumMeasures   int    `gorm:"not null;default:4" json:"num_measures"`

	TrebleCenter string `gorm:"not null" json:"treble_center"`
	TrebleAbove  int    `gorm:"default:0" json:"treble_above"`
	TrebleBelow  int    `gorm:"default:0" json:"treble_below"`
	BassCenter   string `gorm:"not null" json:"bass_center"`
	BassAbove    int    `gorm:"default:0" json:"bass_above"`
	BassBelow    int    `gorm:"default:0" json:"bass_below"`

	PhraseCoherent   bool `gorm:"not null" json:"phrase_coherent"`
	FullyIndependent bool `gorm:"not null" json:"fully_independent"`
	ShowTreble       bool `gorm:"not null" json:"show_treble"`
	ShowBass         bool `gorm:"not null" json:"show_bass"`
}

// GenerationConfig returns the preset as a config snapshot
func (p *Preset) GenerationConfig() GenerationConfig {
	return GenerationConfig{
		TimeSignature: p.TimeSignature,
		NumMeasures:   p.NumMeasures,
		Treble: VoiceRange{
			Center: theory.PitchName(p.TrebleCenter),
			Above:  p.TrebleAbove,
			Below:  p.TrebleBelow,
		},
		Bass: VoiceRange{
			Center: theory.PitchName(p.BassCenter),
			Above:  p.BassAbove,
			Below:  p.BassBelow,
		},
		PhraseCoherent:   p.PhraseCoherent,
		FullyIndependent: p.FullyIndependent,
		ShowTreble:       p.ShowTreble,
		ShowBass:         p.ShowBass,
	}
}

// NewPreset flattens a config into a preset row
func NewPreset(name, description string, cfg GenerationConfig) *Preset {
	return &Preset{
		Name:             name,
		Description:      description,
		TimeSignature:    cfg.TimeSignature,
		NumMeasures:      cfg.NumMeasures,
		TrebleCenter:     string(cfg.Treble.Center),
		TrebleAbove:      cfg.Treble.Above,
		TrebleBelow:      cfg.Treble.Below,
		BassCenter:       string(cfg.Bass.Center),
		BassAbove:        cfg.Bass.Above,
		BassBelow:        cfg.Bass.Below,
		PhraseCoherent:   cfg.PhraseCoherent,
		FullyIndependent: cfg.FullyIndependent,
		ShowTreble:       cfg.ShowTreble,
		ShowBass:         cfg.ShowBass,
	}
}

// GenerationLog tracks generation usage. The generated measures are not stored.
type GenerationLog struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	RequestID      string    `gorm:"index" json:"request_id"`
	ExerciseID     string    `gorm:"index" json:"exercise_id"`
	UserID         string    `gorm:"index" json:"user_id"`
	PresetName     string    `gorm:"index" json:"preset_name,omitempty"`
	Mode           string    `gorm:"not null" json:"mode"`
	Seed           int64     `gorm:"not null" json:"seed"`
	TimeSignature  string    `gorm:"not null" json:"time_signature"`
	NumMeasures    int       `gorm:"not null" json:"num_measures"`
	EventCount     int       `gorm:"not null" json:"event_count"`
	RestCount      int       `gorm:"default:0" json:"rest_count"`
	DurationMicros int64     `gorm:"not null" json:"duration_micros"`
}
