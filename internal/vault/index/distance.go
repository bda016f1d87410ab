// Package index implements an in-process inverted-file (IVF) index ranking vectors
// by cosine distance. It backs the stores whose database has no native vector index.
package index

import "github.com/hupe1980/vecgo/distance"

// Normalize returns a unit-length copy of v. The zero vector is returned as zeros.
func Normalize(v []float32) []float32 {
	if out, ok := distance.NormalizeL2Copy(v); ok {
		return out
	}
	return make([]float32, len(v))
}

// unitDistance is the cosine distance between two already-normalised vectors, clamped to [0, 2].
func unitDistance(a, b []float32) float64 {
	d := 1 - float64(distance.Dot(a, b))
	switch {
	case d < 0:
		return 0
	case d > 2:
		return 2
	default:
		return d
	}
}

// CosineDistance returns 1 - cos(a, b). A zero vector has distance 1 to everything.
func CosineDistance(a, b []float32) float64 {
	return unitDistance(Normalize(a), Normalize(b))
}
