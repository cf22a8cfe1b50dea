package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrPresetExists   = errors.New("preset already exists")
	ErrInvalidPreset  = errors.New("invalid preset")
)

type PresetService struct {
	db *gorm.DB
}

func NewPresetService(db *gorm.DB) *PresetService {
	return &PresetService{db: db}
}

// List returns all presets ordered by name
func (s *PresetService) List() ([]models.Preset, error) {
	var presets []models.Preset
	if err := s.db.Order("name ASC").Find(&presets).Error; err != nil {
		return nil, err
	}
	return presets, nil
}

// Get retrieves a preset by name
func (s *PresetService) Get(name string) (*models.Preset, error) {
	var preset models.Preset
	if err := s.db.Where("name = ?", name).First(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}
	return &preset, nil
}

// Create validates and stores a new preset
func (s *PresetService) Create(name, description, createdBy string, cfg models.GenerationConfig) (*models.Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	preset := models.NewPreset(name, description, cfg)
	preset.CreatedBy = createdBy

	if err := s.db.Create(preset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPresetExists
		}
		return nil, err
	}
	return preset, nil
}

// Delete removes a preset by name
func (s *PresetService) Delete(name string) error {
	result := s.db.Where("name = ?", name).Delete(&models.Preset{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPresetNotFound
	}
	return nil
}
