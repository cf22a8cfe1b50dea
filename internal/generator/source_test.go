package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedSource replays a fixed list of draws, cycling when exhausted
type scriptedSource struct {
	draws []float64
	calls int
}

func script(draws ...float64) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

func TestWeightedChoice(t *testing.T) {
	tests := []struct {
		draw     float64
		expected int
	}{
		{0.0, -2},
		{0.03, -2},
		{0.2, -1},
		{0.5, 0},
		{0.7, 1},
		{0.97, 2},
		{1.5, 2}, // past the total: last outcome
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, WeightedChoice(melodySteps, melodyStepWeights, tt.draw), "draw %.2f", tt.draw)
	}
}

func TestWeightedChoice_Strings(t *testing.T) {
	outcomes := []string{"rest", "note"}
	weights := []float64{0.15, 0.85}

	assert.Equal(t, "rest", WeightedChoice(outcomes, weights, 0.1))
	assert.Equal(t, "note", WeightedChoice(outcomes, weights, 0.2))
}

func TestPick(t *testing.T) {
	assert.Equal(t, 0, pick(script(0.0), 3))
	assert.Equal(t, 1, pick(script(0.5), 3))
	assert.Equal(t, 2, pick(script(0.999), 3))
	assert.Equal(t, 2, pick(script(1.0), 3)) // defensive clamp
	assert.Equal(t, 0, pick(script(0.7), 0))
}

func TestNewSource_Deterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
