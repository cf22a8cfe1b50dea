package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/sightread-api/internal/api/middleware"
	"github.com/Conceptual-Machines/sightread-api/internal/logger"
	"github.com/Conceptual-Machines/sightread-api/internal/metrics"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PresetStore is backed by the database or, without one, by the built-in presets
type PresetStore interface {
	List() ([]models.Preset, error)
	Get(name string) (*models.Preset, error)
	Create(name, description, createdBy string, cfg models.GenerationConfig) (*models.Preset, error)
	Delete(name string) error
}

type PresetHandler struct {
	presets    PresetStore
	exercises  *services.ExerciseService
	cloudwatch *metrics.Client
}

func NewPresetHandler(presets PresetStore, exercises *services.ExerciseService, cloudwatch *metrics.Client) *PresetHandler {
	return &PresetHandler{
		presets:    presets,
		exercises:  exercises,
		cloudwatch: cloudwatch,
	}
}

type CreatePresetRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Config      models.GenerationConfig `json:"config"`
}

type PresetExerciseRequest struct {
	Seed *int64 `json:"seed,omitempty"`
}

func (h *PresetHandler) List(c *gin.Context) {
	presets, err := h.presets.List()
	if err != nil {
		h.internalError(c, "Failed to list presets", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func (h *PresetHandler) Get(c *gin.Context) {
	preset, err := h.presets.Get(c.Param("name"))
	if err != nil {
		h.presetError(c, err)
		return
	}
	c.JSON(http.StatusOK, preset)
}

func (h *PresetHandler) Create(c *gin.Context) {
	var req CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	preset, err := h.presets.Create(req.Name, req.Description, middleware.GetUserID(c), req.Config)
	if err != nil {
		h.presetError(c, err)
		return
	}

	logger.Info("Preset created", logger.Fields{
		"request_id": c.GetString("request_id"),
		"preset":     preset.Name,
		"mode":       string(req.Config.Mode()),
	})
	c.JSON(http.StatusCreated, preset)
}

func (h *PresetHandler) Delete(c *gin.Context) {
	if err := h.presets.Delete(c.Param("name")); err != nil {
		h.presetError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Generate builds an exercise from a stored preset
func (h *PresetHandler) Generate(c *gin.Context) {
	var req PresetExerciseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	preset, err := h.presets.Get(c.Param("name"))
	h.cloudwatch.RecordPresetUsage(err == nil)
	if err != nil {
		h.presetError(c, err)
		return
	}

	exercise, err := h.exercises.Generate(c.Request.Context(), models.ExerciseRequest{
		GenerationConfig: preset.GenerationConfig(),
		Seed:             req.Seed,
	}, services.GenerateOptions{
		RequestID:  c.GetString("request_id"),
		UserID:     middleware.GetUserID(c),
		PresetName: preset.Name,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, exercise)
}

func (h *PresetHandler) presetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPresetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPresetExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidPreset):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrReadOnlyPresets):
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": err.Error()})
	default:
		h.internalError(c, "Preset operation failed", err)
	}
}

func (h *PresetHandler) internalError(c *gin.Context, msg string, err error) {
	logger.Error(msg, err, logger.WithContext(c))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      msg,
		"request_id": c.GetString("request_id"),
	})
}
