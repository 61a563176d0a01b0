package matching

import "math"

// Cosine computes the cosine similarity between two vectors:
// dot(a,b) / (|a|*|b|). The result is symmetric and lies in [-1, 1];
// for vectors produced by a text encoder over natural-language
// descriptions the observed range is effectively [0, 1].
//
// Returns ErrDimensionMismatch if the vectors differ in width and
// ErrZeroVector if either vector has zero magnitude.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// Confidence rescales a similarity score to a display percentage,
// rounded to one decimal place.
func Confidence(score float64) float64 {
	return math.Round(score*1000) / 10
}
