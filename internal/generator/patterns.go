package generator

// Hand-curated rhythms for phrase mode, in beats, keyed by beats per measure
var phrasePatterns = map[int][][]float64{
	2: {
		{1, 1},
		{2},
	},
	3: {
		{1, 1, 1},
		{2, 1},
		{1, 2},
	},
	4: {
		{1, 1, 1, 1},
		{2, 1, 1},
		{1, 2, 1},
		{2, 2},
		{4},
	},
}

// PhrasePatterns returns the curated rhythms for a beat count. Unknown counts
// get a single all-quarters pattern.
func PhrasePatterns(beats int) [][]float64 {
	if patterns, ok := phrasePatterns[beats]; ok {
		return patterns
	}
	if beats <= 0 {
		return nil
	}

	quarters := make([]float64, beats)
	for i := range quarters {
		quarters[i] = 1
	}
	return [][]float64{quarters}
}

func choosePattern(src Source, beats int) []float64 {
	patterns := PhrasePatterns(beats)
	return patterns[pick(src, len(patterns))]
}
