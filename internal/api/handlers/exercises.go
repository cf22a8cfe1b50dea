package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/sightread-api/internal/api/middleware"
	"github.com/Conceptual-Machines/sightread-api/internal/config"
	"github.com/Conceptual-Machines/sightread-api/internal/logger"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/services"
	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	service *services.ExerciseService
	cfg     *config.Config
}

func NewExerciseHandler(service *services.ExerciseService, cfg *config.Config) *ExerciseHandler {
	return &ExerciseHandler{
		service: service,
		cfg:     cfg,
	}
}

type DefaultsResponse struct {
	models.GenerationConfig
	MaxMeasures int `json:"max_measures"`
}

// Generate builds a new exercise. Fields missing from the body keep their defaults.
func (h *ExerciseHandler) Generate(c *gin.Context) {
	req := models.ExerciseRequest{GenerationConfig: h.cfg.DefaultGenerationConfig()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := h.service.Generate(c.Request.Context(), req, services.GenerateOptions{
		RequestID: c.GetString("request_id"),
		UserID:    middleware.GetUserID(c),
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// Defaults returns the settings a new exercise form starts with
func (h *ExerciseHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, DefaultsResponse{
		GenerationConfig: h.cfg.DefaultGenerationConfig(),
		MaxMeasures:      h.cfg.MaxMeasures,
	})
}

const (
	defaultGenerationsLimit = 50
	maxGenerationsLimit     = 500
)

type GenerationsResponse struct {
	Generations []models.GenerationLog `json:"generations"`
	Limit       int                    `json:"limit"`
}

// ListGenerations returns the most recent generation logs, newest first.
// Without a database the list is always empty.
func (h *ExerciseHandler) ListGenerations(c *gin.Context) {
	limit, err := nonNegativeQuery(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return
	}
	if limit == 0 {
		limit = defaultGenerationsLimit
	}
	limit = min(limit, maxGenerationsLimit)

	logs, err := h.service.RecentLogs(limit)
	if err != nil {
		logger.Error("Failed to list generations", err, logger.WithContext(c))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Failed to list generations",
			"request_id": c.GetString("request_id"),
		})
		return
	}

	c.JSON(http.StatusOK, GenerationsResponse{Generations: logs, Limit: limit})
}

func writeGenerationError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidRequest) || errors.Is(err, services.ErrTooManyMeasures) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Error("Exercise generation failed", err, logger.WithContext(c))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "Failed to generate exercise",
		"request_id": c.GetString("request_id"),
	})
}
