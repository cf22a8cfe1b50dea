package services

import (
	"context"
	"testing"

	"github.com/Conceptual-Machines/sightread-api/internal/models"
	"github.com/Conceptual-Machines/sightread-api/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRequest() models.ExerciseRequest {
	return models.ExerciseRequest{
		GenerationConfig: models.GenerationConfig{
			TimeSignature: "3/4",
			NumMeasures:   4,
			Treble:        models.VoiceRange{Center: "c/4", Above: 4},
			Bass:          models.VoiceRange{Center: "c/3", Above: 4},
			ShowTreble:    true,
			ShowBass:      false,
		},
	}
}

func newTestExerciseService(maxMeasures int) *ExerciseService {
	s := NewExerciseService(nil, nil, maxMeasures)
	s.newSeed = func() int64 { return 42 }
	return s
}

func TestExerciseService_Generate(t *testing.T) {
	s := newTestExerciseService(16)

	exercise, err := s.Generate(context.Background(), exerciseRequest(), GenerateOptions{RequestID: "req-1"})
	require.NoError(t, err)

	assert.NotEmpty(t, exercise.ID)
	assert.Equal(t, int64(42), exercise.Seed)
	assert.Equal(t, "3/4", exercise.TimeSignature)
	assert.Equal(t, 3, exercise.BeatsPerMeasure)
	assert.Equal(t, models.ModeSharedPattern, exercise.Mode)
	assert.True(t, exercise.ShowTreble)
	assert.False(t, exercise.ShowBass)
	require.Len(t, exercise.Measures, 4)

	for _, m := range exercise.Measures {
		var treble, bass float64
		for _, e := range m.Treble {
			treble += e.Beats
			if !e.IsRest {
				require.NotNil(t, e.MIDI)
				assert.Equal(t, theory.Treble, e.Voice)
			}
		}
		for _, e := range m.Bass {
			bass += e.Beats
		}
		assert.Equal(t, 3.0, treble)
		assert.Equal(t, 3.0, bass)
	}
}

func TestExerciseService_SeedReproducesExercise(t *testing.T) {
	s := newTestExerciseService(16)
	req := exerciseRequest()
	req.PhraseCoherent = true
	seed := int64(7)
	req.Seed = &seed

	first, err := s.Generate(context.Background(), req, GenerateOptions{})
	require.NoError(t, err)
	second, err := s.Generate(context.Background(), req, GenerateOptions{})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(7), first.Seed)
	assert.Equal(t, first.Measures, second.Measures)
	assert.Equal(t, models.ModePhraseCoherent, first.Mode)
}

func TestExerciseService_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ExerciseRequest)
		wantErr error
	}{
		{name: "zero measures", mutate: func(r *models.ExerciseRequest) { r.NumMeasures = 0 }, wantErr: ErrInvalidRequest},
		{name: "bad time signature", mutate: func(r *models.ExerciseRequest) { r.TimeSignature = "3-4" }, wantErr: ErrInvalidRequest},
		{name: "bad center", mutate: func(r *models.ExerciseRequest) { r.Bass.Center = "x" }, wantErr: ErrInvalidRequest},
		{name: "over limit", mutate: func(r *models.ExerciseRequest) { r.NumMeasures = 17 }, wantErr: ErrTooManyMeasures},
	}

	s := newTestExerciseService(16)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := exerciseRequest()
			tt.mutate(&req)

			exercise, err := s.Generate(context.Background(), req, GenerateOptions{})
			assert.Nil(t, exercise)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExerciseService_RecentLogsWithoutDatabase(t *testing.T) {
	logs, err := newTestExerciseService(0).RecentLogs(10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
