package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Conceptual-Machines/sightread-api/internal/generator"
	"github.com/Conceptual-Machines/sightread-api/internal/logger"
	"github.com/Conceptual-Machines/sightread-api/internal/metrics"
	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidRequest  = errors.New("invalid exercise request")
	ErrTooManyMeasures = errors.New("too many measures requested")
)

// GenerateOptions carries request metadata for usage logging
type GenerateOptions struct {
	RequestID  string
	UserID     string
	PresetName string
}

type ExerciseService struct {
	db          *gorm.DB // nil disables usage logging
	cloudwatch  *metrics.Client
	sentry      *metrics.SentryMetrics
	maxMeasures int
	newSeed     func() int64
}

func NewExerciseService(db *gorm.DB, cloudwatch *metrics.Client, maxMeasures int) *ExerciseService {
	return &ExerciseService{
		db:          db,
		cloudwatch:  cloudwatch,
		sentry:      metrics.NewSentryMetrics(),
		maxMeasures: maxMeasures,
		newSeed:     func() int64 { return time.Now().UnixNano() },
	}
}

// exerciseSink collects the generated measures into an Exercise
type exerciseSink struct {
	exercise *models.Exercise
}

func (s *exerciseSink) Render(measures []models.Measure, cfg models.GenerationConfig) error {
	s.exercise.TimeSignature = cfg.TimeSignature
	s.exercise.BeatsPerMeasure = cfg.BeatsPerMeasure()
	s.exercise.Mode = cfg.Mode()
	s.exercise.ShowTreble = cfg.ShowTreble
	s.exercise.ShowBass = cfg.ShowBass
	s.exercise.Measures = models.RenderMeasures(measures)
	return nil
}

// Generate validates the request, runs the generator with a seeded source and
// returns the rendered exercise. The seed is echoed back so the same exercise
// can be requested again.
func (s *ExerciseService) Generate(ctx context.Context, req models.ExerciseRequest, opts GenerateOptions) (*models.Exercise, error) {
	cfg := req.GenerationConfig
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if s.maxMeasures > 0 && cfg.NumMeasures > s.maxMeasures {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyMeasures, cfg.NumMeasures, s.maxMeasures)
	}

	seed := s.newSeed()
	seedSource := "generated"
	if req.Seed != nil {
		seed = *req.Seed
		seedSource = "request"
	}
	logger.Debug("Generating exercise", logger.Fields{
		"request_id":  opts.RequestID,
		"mode":        string(cfg.Mode()),
		"seed":        seed,
		"seed_source": seedSource,
		"preset":      opts.PresetName,
	})

	exercise := &models.Exercise{ID: uuid.New().String(), Seed: seed}
	sink := &exerciseSink{exercise: exercise}

	start := time.Now()
	measures, err := generator.Run(generator.StaticConfig(cfg), sink, generator.NewSource(seed))
	if err != nil {
		return nil, err
	}
	duration := time.Since(start)

	events, rests := models.CountEvents(measures)
	mode := string(cfg.Mode())

	logger.LogGeneration(ctx, mode, duration, events, rests, logger.Fields{
		"request_id":  opts.RequestID,
		"exercise_id": exercise.ID,
		"seed":        seed,
		"measures":    len(measures),
	})
	s.sentry.RecordGeneration(ctx, mode, duration, events, rests)
	s.cloudwatch.RecordGeneration(mode, duration, events, rests)

	s.logUsage(&models.GenerationLog{
		RequestID:      opts.RequestID,
		ExerciseID:     exercise.ID,
		UserID:         opts.UserID,
		PresetName:     opts.PresetName,
		Mode:           mode,
		Seed:           seed,
		TimeSignature:  cfg.TimeSignature,
		NumMeasures:    cfg.NumMeasures,
		EventCount:     events,
		RestCount:      rests,
		DurationMicros: duration.Microseconds(),
	})

	return exercise, nil
}

// RecentLogs returns the latest generation logs, newest first
func (s *ExerciseService) RecentLogs(limit int) ([]models.GenerationLog, error) {
	if s.db == nil {
		return []models.GenerationLog{}, nil
	}
	logs := []models.GenerationLog{}
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// logUsage stores a generation log. Failures are logged, never returned.
func (s *ExerciseService) logUsage(entry *models.GenerationLog) {
	if s.db == nil {
		return
	}
	if err := s.db.Create(entry).Error; err != nil {
		logger.Warn("Failed to store generation log", logger.Fields{
			"request_id":  entry.RequestID,
			"exercise_id": entry.ExerciseID,
			"error":       err.Error(),
		})
	}
}
