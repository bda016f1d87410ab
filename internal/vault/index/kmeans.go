package index

import (
	"math/rand"
)

const (
	maxTrainIterations = 15
	// samplesPerList caps the training set at this many points per centroid.
	samplesPerList = 64
)

// trainSpherical runs Lloyd's algorithm on unit vectors and returns k unit centroids.
// Points are assigned by cosine distance and centroids re-normalised after every update.
func trainSpherical(vectors [][]float32, k int, rng *rand.Rand) [][]float32 {
	n := len(vectors)
	if k > n {
		k = n
	}
	if k == 0 {
		return nil
	}

	sample := vectors
	if limit := k * samplesPerList; n > limit {
		sample = make([][]float32, limit)
		for i, p := range rng.Perm(n)[:limit] {
			sample[i] = vectors[p]
		}
	}

	dim := len(sample[0])
	centroids := make([][]float32, k)
	for i, p := range rng.Perm(len(sample))[:k] {
		centroids[i] = append([]float32(nil), sample[p]...)
	}

	assignments := make([]int, len(sample))
	for i := range assignments {
		assignments[i] = -1
	}
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}
	counts := make([]int, k)

	for iter := 0; iter < maxTrainIterations; iter++ {
		changed := false
		for i, v := range sample {
			best := nearest(v, centroids)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		for j := range sums {
			clear(sums[j])
			counts[j] = 0
		}
		for i, v := range sample {
			c := assignments[i]
			for d, x := range v {
				sums[c][d] += float64(x)
			}
			counts[c]++
		}

		for j := range centroids {
			if counts[j] == 0 {
				// Reseed an empty list from a random point.
				copy(centroids[j], sample[rng.Intn(len(sample))])
				continue
			}
			mean := make([]float32, dim)
			for d := range mean {
				mean[d] = float32(sums[j][d] / float64(counts[j]))
			}
			centroids[j] = Normalize(mean)
		}
	}

	return centroids
}

// nearest returns the index of the centroid closest to v; ties go to the lower index.
func nearest(v []float32, centroids [][]float32) int {
	best, bestDist := 0, 3.0
	for j, c := range centroids {
		if d := unitDistance(v, c); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}
