package generator

import (
	"math/rand"
)

// Source supplies uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source so a generation can be replayed
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// pick returns floor(draw * n), clamped to [0, n-1]
func pick(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(src.Float64() * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// chance consumes one draw and reports whether it fell below p
func chance(src Source, p float64) bool {
	return src.Float64() < p
}

// WeightedChoice returns the first outcome whose cumulative weight reaches draw.
// If rounding leaves draw above the total, the last outcome is returned.
func WeightedChoice[T any](outcomes []T, weights []float64, draw float64) T {
	cumulative := 0.0
	for i, w := range weights {
		if i >= len(outcomes) {
			break
		}
		cumulative += w
		if cumulative >= draw {
			return outcomes[i]
		}
	}
	return outcomes[len(outcomes)-1]
}
