package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/pkg/embedded"
	"gopkg.in/yaml.v3"
)

const builtinCreator = "builtin"

var ErrReadOnlyPresets = errors.New("presets are read-only without a database")

type builtinFile struct {
	Presets []builtinPreset `yaml:"presets"`
}

type builtinPreset struct {
	Name        string                  `yaml:"name"`
	Description string                  `yaml:"description"`
	Config      models.GenerationConfig `yaml:"config"`
}

// ParsePresets decodes a presets YAML document and validates every entry
func ParsePresets(data []byte) ([]models.Preset, error) {
	var file builtinFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	seen := make(map[string]bool, len(file.Presets))
	presets := make([]models.Preset, 0, len(file.Presets))
	for _, p := range file.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: preset without a name", ErrInvalidPreset)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate preset %q", ErrInvalidPreset, p.Name)
		}
		if err := p.Config.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPreset, p.Name, err)
		}
		seen[p.Name] = true

		preset := models.NewPreset(p.Name, p.Description, p.Config)
		preset.CreatedBy = builtinCreator
		presets = append(presets, *preset)
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// BuiltinPresets returns the presets shipped with the binary
func BuiltinPresets() ([]models.Preset, error) {
	return ParsePresets(embedded.PresetsYAML)
}

// BuiltinPresetStore serves the shipped presets when no database is configured
type BuiltinPresetStore struct {
	presets []models.Preset
}

func NewBuiltinPresetStore() (*BuiltinPresetStore, error) {
	presets, err := BuiltinPresets()
	if err != nil {
		return nil, err
	}
	return &BuiltinPresetStore{presets: presets}, nil
}

func (s *BuiltinPresetStore) List() ([]models.Preset, error) {
	out := make([]models.Preset, len(s.presets))
	copy(out, s.presets)
	return out, nil
}

func (s *BuiltinPresetStore) Get(name string) (*models.Preset, error) {
	for i := range s.presets {
		if s.presets[i].Name == name {
			preset := s.presets[i]
			return &preset, nil
		}
	}
	return nil, ErrPresetNotFound
}

func (s *BuiltinPresetStore) Create(_, _, _ string, _ models.GenerationConfig) (*models.Preset, error) {
	return nil, ErrReadOnlyPresets
}

func (s *BuiltinPresetStore) Delete(_ string) error {
	return ErrReadOnlyPresets
}

// SeedBuiltins stores shipped presets whose names are not taken yet
func (s *PresetService) SeedBuiltins() (int, error) {
	presets, err := BuiltinPresets()
	if err != nil {
		return 0, err
	}

	created := 0
	for i := range presets {
		var count int64
		if err := s.db.Model(&models.Preset{}).Where("name = ?", presets[i].Name).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&presets[i]).Error; err != nil {
			return created, fmt.Errorf("failed to seed preset %s: %w", presets[i].Name, err)
		}
		created++
	}
	return created, nil
}
